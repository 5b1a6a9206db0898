package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haneenzahr1-lgtm/labdesk/internal/domain/order"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderSource exposes the order data billing needs to compute balances.
type OrderSource interface {
	Get(ctx context.Context, orderID string) (*order.Order, error)
	ListForPatient(ctx context.Context, patientID string) ([]order.Order, error)
}

type Service struct {
	repo   Repository
	orders OrderSource
	now    func() time.Time
}

func NewService(repo Repository, orders OrderSource) *Service {
	return &Service{
		repo:   repo,
		orders: orders,
		now:    time.Now,
	}
}

type RecordPaymentInput struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
}

// RecordPayment stores a payment against an order. The amount must be
// strictly positive.
func (s *Service) RecordPayment(ctx context.Context, in RecordPaymentInput) (*Payment, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	if in.OrderID == "" {
		return nil, fmt.Errorf("orderId is required")
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	method := MethodCash
	if in.Method != "" {
		method = Method(in.Method)
		if !validMethods[method] {
			return nil, fmt.Errorf("invalid payment method: %s", in.Method)
		}
	}

	o, err := s.orders.Get(ctx, in.OrderID)
	if err == order.ErrNotFound {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	p := &Payment{
		PaymentID: uuid.NewString(),
		OrderID:   o.OrderID,
		PatientID: o.PatientID,
		Amount:    in.Amount,
		Method:    method,
		Date:      s.now().Format(order.DateLayout),
	}
	if err := s.repo.Append(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListForPatient returns the patient's payment history.
func (s *Service) ListForPatient(ctx context.Context, patientID string) ([]Payment, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Payment, 0)
	for _, p := range all {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// AmountDue computes the patient's outstanding balance: the sum of
// their order amounts minus the sum of their payments, floored at zero.
func (s *Service) AmountDue(ctx context.Context, patientID string) (float64, error) {
	orders, err := s.orders.ListForPatient(ctx, patientID)
	if err != nil {
		return 0, err
	}
	var billed float64
	for _, o := range orders {
		billed += o.Amount
	}

	payments, err := s.ListForPatient(ctx, patientID)
	if err != nil {
		return 0, err
	}
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}

	due := billed - paid
	if due < 0 {
		due = 0
	}
	return due, nil
}
