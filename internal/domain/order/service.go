package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/ident"
)

var ErrNotFound = errors.New("order not found")

type Service struct {
	repo Repository
	ids  *ident.Generator
	now  func() time.Time
}

func NewService(repo Repository, ids *ident.Generator) *Service {
	return &Service{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

type CreateInput struct {
	PatientID    string   `json:"patientId"`
	Tests        []string `json:"tests"`
	Priority     string   `json:"priority"`
	SampleType   string   `json:"sampleType"`
	Instructions string   `json:"instructions"`
}

// Create validates and stores a new order with a price snapshot.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	in.PatientID = strings.TrimSpace(in.PatientID)
	in.SampleType = strings.TrimSpace(in.SampleType)

	if in.PatientID == "" {
		return nil, fmt.Errorf("patientId is required")
	}
	if in.SampleType == "" {
		return nil, fmt.Errorf("sampleType is required")
	}

	tests := dedupe(in.Tests)
	if len(tests) == 0 {
		return nil, fmt.Errorf("at least one test is required")
	}

	priority := PriorityRoutine
	if in.Priority != "" {
		priority = Priority(in.Priority)
		if !validPriorities[priority] {
			return nil, fmt.Errorf("invalid priority: %s", in.Priority)
		}
	}

	// PatientID is stored as given; it is not checked against the patient
	// collection.
	o := &Order{
		OrderID:      s.ids.Generate("ORD"),
		PatientID:    in.PatientID,
		Tests:        tests,
		Priority:     priority,
		SampleType:   in.SampleType,
		Instructions: strings.TrimSpace(in.Instructions),
		Date:         today(s.now()),
		Status:       StatusPending,
		Amount:       PriceOf(tests),
	}
	if err := s.repo.Append(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// dedupe drops repeated test codes, keeping first-seen order.
func dedupe(tests []string) []string {
	seen := make(map[string]bool, len(tests))
	out := make([]string, 0, len(tests))
	for _, code := range tests {
		code = strings.TrimSpace(code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

// ListForPatient returns the orders belonging to one patient.
func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]Order, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0)
	for _, o := range all {
		if o.PatientID == patientID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	o, found, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return o, nil
}

// UpdateStatus moves an order through the lab workflow. Only forward
// transitions are accepted.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, to Status) (*Order, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canTransition(o.Status, to) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, to)
	}
	o.Status = to
	found, err := s.repo.ReplaceByOrderID(ctx, orderID, o)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return o, nil
}

// RecordResult reports an outcome for one of the order's tests.
func (s *Service) RecordResult(ctx context.Context, orderID, testCode, status string) (*Result, error) {
	o, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	testCode = strings.TrimSpace(testCode)
	ordered := false
	for _, code := range o.Tests {
		if code == testCode {
			ordered = true
			break
		}
	}
	if !ordered {
		return nil, fmt.Errorf("test %s is not part of order %s", testCode, orderID)
	}

	resultStatus := ResultPreliminary
	if status != "" {
		resultStatus = ResultStatus(status)
		if !validResultStatuses[resultStatus] {
			return nil, fmt.Errorf("invalid result status: %s", status)
		}
	}

	res := &Result{
		OrderID:  orderID,
		TestCode: testCode,
		TestName: DisplayName(testCode),
		Date:     today(s.now()),
		Status:   resultStatus,
	}
	if err := s.repo.AppendResult(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListResultsForOrder returns all reported results for one order.
func (s *Service) ListResultsForOrder(ctx context.Context, orderID string) ([]Result, error) {
	all, err := s.repo.GetAllResults(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0)
	for _, r := range all {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListResultsForPatient returns results across all of a patient's orders.
func (s *Service) ListResultsForPatient(ctx context.Context, patientID string) ([]Result, error) {
	orders, err := s.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(orders))
	for _, o := range orders {
		ids[o.OrderID] = true
	}
	all, err := s.repo.GetAllResults(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0)
	for _, r := range all {
		if ids[r.OrderID] {
			out = append(out, r)
		}
	}
	return out, nil
}
