package patient

import (
	"context"
	"testing"
	"time"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/ident"
)

// -- Mock Repository --

type mockRepo struct {
	patients []Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{}
}

func (m *mockRepo) Upsert(_ context.Context, p *Patient) error {
	for i := range m.patients {
		if m.patients[i].ID == p.ID {
			m.patients[i] = *p
			return nil
		}
	}
	m.patients = append(m.patients, *p)
	return nil
}

func (m *mockRepo) GetAll(_ context.Context) ([]Patient, error) {
	out := make([]Patient, len(m.patients))
	copy(out, m.patients)
	return out, nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Patient, bool, error) {
	for i := range m.patients {
		if m.patients[i].ID == id {
			p := m.patients[i]
			return &p, true, nil
		}
	}
	return nil, false, nil
}

// -- Tests --

func fixedClock(value string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse(DateLayout, value)
		return t
	}
}

func newTestService(repo *mockRepo) *Service {
	svc := NewService(repo, ident.New())
	svc.now = fixedClock("2024-06-15")
	svc.coin = func() bool { return true }
	return svc
}

func validInput() RegisterInput {
	return RegisterInput{
		FirstName:  "John",
		LastName:   "Doe",
		Gender:     "male",
		DOB:        "1992-05-15",
		Phone:      "+1 (555) 123-4567",
		NationalID: "123456789",
		Address:    "123 Main Street",
	}
}

func TestRegister(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	p, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RegistrationDate != "2024-06-15" {
		t.Errorf("expected today's registration date, got %s", p.RegistrationDate)
	}

	all, _ := svc.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 patient after registration, got %d", len(all))
	}
	if all[0].ID != p.ID {
		t.Errorf("expected stored id %s, got %s", p.ID, all[0].ID)
	}
}

func TestRegister_MissingPhone_StoreUnchanged(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	in := validInput()
	in.Phone = ""
	if _, err := svc.Register(context.Background(), in); err == nil {
		t.Fatal("expected error for missing phone")
	}

	all, _ := svc.List(context.Background())
	if len(all) != 0 {
		t.Errorf("expected store unchanged after rejected registration, got %d records", len(all))
	}
}

func TestRegister_InvalidGender(t *testing.T) {
	svc := newTestService(newMockRepo())
	in := validInput()
	in.Gender = "unknown"
	if _, err := svc.Register(context.Background(), in); err == nil {
		t.Error("expected error for invalid gender")
	}
}

func TestRegister_InvalidDOB(t *testing.T) {
	svc := newTestService(newMockRepo())
	in := validInput()
	in.DOB = "15/05/1992"
	if _, err := svc.Register(context.Background(), in); err == nil {
		t.Error("expected error for malformed dob")
	}
}

func TestFind_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())
	if _, err := svc.Find(context.Background(), "P-2024-999999999"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateNotes_ReplacesRecordInPlace(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	first, _ := svc.Register(ctx, validInput())
	second := validInput()
	second.FirstName = "Jane"
	svc.Register(ctx, second)

	if _, err := svc.UpdateNotes(ctx, first.ID, "follow-up scheduled"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := svc.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(all))
	}
	if all[0].ID != first.ID || all[0].Notes != "follow-up scheduled" {
		t.Errorf("expected notes update to replace record in position 0, got %+v", all[0])
	}
}

func TestSearch_EmptyTermReturnsAll(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	svc.Seed(ctx)

	rows, noMatches, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(SampleRoster()) {
		t.Errorf("expected all %d rows, got %d", len(SampleRoster()), len(rows))
	}
	if noMatches {
		t.Error("empty term must not be flagged as no-matches")
	}
}

func TestSearch_NoMatchesSignaledDistinctly(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	// Empty store: an unmatched term is not a "no results" situation.
	rows, noMatches, _ := svc.Search(ctx, "zzz")
	if len(rows) != 0 || noMatches {
		t.Errorf("empty store: expected no rows and no no-matches flag, got %d/%v", len(rows), noMatches)
	}

	svc.Seed(ctx)
	rows, noMatches, _ = svc.Search(ctx, "zzz-does-not-exist")
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
	if !noMatches {
		t.Error("non-empty roster with unmatched term must signal no-matches")
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	svc.Seed(ctx)

	rows, _, _ := svc.Search(ctx, "jOhN")
	// Matches John Doe and Robert Johnson.
	if len(rows) != 2 {
		t.Errorf("expected 2 matches for 'jOhN', got %d", len(rows))
	}
}

func TestDirectory_DerivedAge(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	in := validInput()
	in.DOB = "2000-06-15"
	svc.Register(ctx, in)

	svc.now = fixedClock("2024-06-14")
	rows, _ := svc.Directory(ctx)
	if rows[0].Age != 23 {
		t.Errorf("expected age 23 the day before the birthday, got %d", rows[0].Age)
	}

	svc.now = fixedClock("2024-06-15")
	rows, _ = svc.Directory(ctx)
	if rows[0].Age != 24 {
		t.Errorf("expected age 24 on the birthday, got %d", rows[0].Age)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Seed(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := svc.List(ctx)
	if len(all) != len(SampleRoster()) {
		t.Errorf("expected %d patients after double seed, got %d", len(SampleRoster()), len(all))
	}
}
