package patient

import (
	"context"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/store"
)

const (
	collection = "patients"
	idField    = "id"
)

type storeRepo struct {
	st *store.Store
}

func NewStoreRepo(st *store.Store) Repository {
	return &storeRepo{st: st}
}

func (r *storeRepo) Upsert(ctx context.Context, p *Patient) error {
	return r.st.Upsert(ctx, collection, idField, p.ID, p)
}

func (r *storeRepo) GetAll(ctx context.Context) ([]Patient, error) {
	var patients []Patient
	if err := r.st.GetAll(ctx, collection, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *storeRepo) GetByID(ctx context.Context, id string) (*Patient, bool, error) {
	var p Patient
	found, err := r.st.GetByID(ctx, collection, idField, id, &p)
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}
