package billing

// Method is the tender used for a payment.
type Method string

const (
	MethodCash      Method = "cash"
	MethodCard      Method = "card"
	MethodInsurance Method = "insurance"
	MethodTransfer  Method = "transfer"
)

var validMethods = map[Method]bool{
	MethodCash:      true,
	MethodCard:      true,
	MethodInsurance: true,
	MethodTransfer:  true,
}

// Payment is money received against a patient's order.
type Payment struct {
	PaymentID string  `json:"paymentId"`
	OrderID   string  `json:"orderId"`
	PatientID string  `json:"patientId"`
	Amount    float64 `json:"amount"`
	Method    Method  `json:"method"`
	Date      string  `json:"date"`
}
