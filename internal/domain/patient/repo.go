package patient

import "context"

type Repository interface {
	// Upsert inserts p, or replaces the stored record with the same id in
	// place, preserving its position in the collection.
	Upsert(ctx context.Context, p *Patient) error
	// GetAll returns patients in stored order; empty if never written.
	GetAll(ctx context.Context) ([]Patient, error)
	// GetByID returns the first patient with the given id, or false.
	GetByID(ctx context.Context, id string) (*Patient, bool, error)
}
