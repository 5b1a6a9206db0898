package order

import (
	"context"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/store"
)

const (
	ordersCollection  = "orders"
	resultsCollection = "results"
	orderIDField      = "orderId"
)

type storeRepo struct {
	store *store.Store
}

// NewStoreRepo builds a Repository backed by the blob store.
func NewStoreRepo(s *store.Store) Repository {
	return &storeRepo{store: s}
}

func (r *storeRepo) Append(ctx context.Context, o *Order) error {
	return r.store.Append(ctx, ordersCollection, o)
}

func (r *storeRepo) GetAll(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := r.store.GetAll(ctx, ordersCollection, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *storeRepo) GetByOrderID(ctx context.Context, orderID string) (*Order, bool, error) {
	var o Order
	found, err := r.store.GetByID(ctx, ordersCollection, orderIDField, orderID, &o)
	if err != nil || !found {
		return nil, found, err
	}
	return &o, true, nil
}

func (r *storeRepo) ReplaceByOrderID(ctx context.Context, orderID string, o *Order) (bool, error) {
	return r.store.ReplaceByID(ctx, ordersCollection, orderIDField, orderID, o)
}

func (r *storeRepo) AppendResult(ctx context.Context, res *Result) error {
	return r.store.Append(ctx, resultsCollection, res)
}

func (r *storeRepo) GetAllResults(ctx context.Context) ([]Result, error) {
	var results []Result
	if err := r.store.GetAll(ctx, resultsCollection, &results); err != nil {
		return nil, err
	}
	return results, nil
}
