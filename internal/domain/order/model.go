package order

import "time"

const DateLayout = "2006-01-02"

// Priority is the turnaround class requested for an order.
type Priority string

const (
	PriorityRoutine Priority = "routine"
	PriorityUrgent  Priority = "urgent"
	PriorityStat    Priority = "stat"
)

var validPriorities = map[Priority]bool{
	PriorityRoutine: true,
	PriorityUrgent:  true,
	PriorityStat:    true,
}

// Status tracks the lab workflow state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// statusTransitions defines the allowed workflow moves.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusInProgress},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
}

func canTransition(from, to Status) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is a lab test order for a patient. Amount is the price snapshot
// taken at creation time; later price table changes do not affect it.
type Order struct {
	OrderID      string   `json:"orderId"`
	PatientID    string   `json:"patientId"`
	Tests        []string `json:"tests"`
	Priority     Priority `json:"priority"`
	SampleType   string   `json:"sampleType"`
	Instructions string   `json:"instructions,omitempty"`
	Date         string   `json:"date"`
	Status       Status   `json:"status"`
	Amount       float64  `json:"amount"`
}

// ResultStatus tracks whether a reported result is still subject to review.
type ResultStatus string

const (
	ResultPreliminary ResultStatus = "preliminary"
	ResultFinalized   ResultStatus = "finalized"
)

var validResultStatuses = map[ResultStatus]bool{
	ResultPreliminary: true,
	ResultFinalized:   true,
}

// Result is a single test outcome reported against an order.
type Result struct {
	OrderID  string       `json:"orderId"`
	TestCode string       `json:"testCode"`
	TestName string       `json:"testName"`
	Date     string       `json:"date"`
	Status   ResultStatus `json:"status"`
}

func today(now time.Time) string {
	return now.Format(DateLayout)
}
