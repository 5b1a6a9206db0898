package billing

import (
	"context"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/store"
)

const paymentsCollection = "payments"

type storeRepo struct {
	store *store.Store
}

// NewStoreRepo builds a Repository backed by the blob store.
func NewStoreRepo(s *store.Store) Repository {
	return &storeRepo{store: s}
}

func (r *storeRepo) Append(ctx context.Context, p *Payment) error {
	return r.store.Append(ctx, paymentsCollection, p)
}

func (r *storeRepo) GetAll(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := r.store.GetAll(ctx, paymentsCollection, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
