package billing

import "context"

// Repository persists payments.
type Repository interface {
	Append(ctx context.Context, p *Payment) error
	GetAll(ctx context.Context) ([]Payment, error)
}
