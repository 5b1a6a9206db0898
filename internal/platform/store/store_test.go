package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

type memBlob struct {
	data map[string][]byte
}

func newMemBlob() *memBlob {
	return &memBlob{data: make(map[string][]byte)}
}

func (b *memBlob) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := b.data[key]
	return data, ok, nil
}

func (b *memBlob) Put(_ context.Context, key string, data []byte) error {
	b.data[key] = data
	return nil
}

type rec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore() (*Store, *memBlob) {
	blob := newMemBlob()
	return New(blob, zerolog.Nop()), blob
}

func TestGetAll_NeverWritten(t *testing.T) {
	s, _ := newTestStore()
	var got []rec
	if err := s.GetAll(context.Background(), "patients", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d records", len(got))
	}
}

func TestUpsert_Idempotent(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	r := rec{ID: "P-2024-001", Name: "John"}

	if err := s.Upsert(ctx, "patients", "id", r.ID, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Upsert(ctx, "patients", "id", r.ID, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []rec
	if err := s.GetAll(ctx, "patients", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly one record after double upsert, got %d", len(got))
	}
	if got[0] != r {
		t.Errorf("expected %+v, got %+v", r, got[0])
	}
}

func TestUpsert_ReplaceInPlace(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	for _, r := range []rec{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
		{ID: "c", Name: "third"},
	} {
		if err := s.Upsert(ctx, "patients", "id", r.ID, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := s.Upsert(ctx, "patients", "id", "b", rec{ID: "b", Name: "updated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []rec
	if err := s.GetAll(ctx, "patients", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[1].ID != "b" || got[1].Name != "updated" {
		t.Errorf("expected replaced record to keep position 1, got %+v", got[1])
	}
	if got[0].ID != "a" || got[2].ID != "c" {
		t.Errorf("expected surrounding order preserved, got %+v", got)
	}
}

func TestAppend_AllowsDuplicateIDs(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	r := rec{ID: "ORD-2024-001", Name: "dup"}

	if err := s.Append(ctx, "orders", r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Append(ctx, "orders", r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []rec
	if err := s.GetAll(ctx, "orders", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected append to keep duplicates, got %d records", len(got))
	}
}

func TestGetByID(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	if err := s.Upsert(ctx, "patients", "id", "a", rec{ID: "a", Name: "first"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got rec
	found, err := s.GetByID(ctx, "patients", "id", "a", &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected record to be found")
	}
	if got.Name != "first" {
		t.Errorf("expected name 'first', got %s", got.Name)
	}

	found, err = s.GetByID(ctx, "patients", "id", "missing", &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected miss for unknown id")
	}
}

func TestReplaceByID_NotFound(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	found, err := s.ReplaceByID(ctx, "orders", "orderId", "missing", rec{ID: "missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected ReplaceByID to report not found")
	}

	var got []rec
	if err := s.GetAll(ctx, "orders", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected ReplaceByID miss to leave collection empty, got %d", len(got))
	}
}

func TestCorruptedBlob_TreatedAsEmpty(t *testing.T) {
	s, blob := newTestStore()
	ctx := context.Background()
	blob.data["patients"] = []byte("{not json")

	var got []rec
	if err := s.GetAll(ctx, "patients", &got); err != nil {
		t.Fatalf("expected fail-open on corrupted blob, got error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d records", len(got))
	}

	// A write after corruption starts the collection over.
	if err := s.Upsert(ctx, "patients", "id", "a", rec{ID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.GetAll(ctx, "patients", &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 record after rewrite, got %d", len(got))
	}
}
