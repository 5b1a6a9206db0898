package order

import "context"

// Repository persists orders and their results.
type Repository interface {
	Append(ctx context.Context, o *Order) error
	GetAll(ctx context.Context) ([]Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*Order, bool, error)
	ReplaceByOrderID(ctx context.Context, orderID string, o *Order) (bool, error)

	AppendResult(ctx context.Context, r *Result) error
	GetAllResults(ctx context.Context) ([]Result, error)
}
