package patient

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/haneenzahr1-lgtm/labdesk/internal/platform/ident"
)

var ErrNotFound = errors.New("patient not found")

type Service struct {
	repo Repository
	ids  *ident.Generator
	now  func() time.Time
	coin func() bool
}

func NewService(repo Repository, ids *ident.Generator) *Service {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		repo: repo,
		ids:  ids,
		now:  time.Now,
		coin: func() bool { return r.Intn(2) == 0 },
	}
}

// RegisterInput carries the registration form fields. All but Notes are
// required.
type RegisterInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	DOB        string `json:"dob"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

// Register validates the form, assigns a fresh id and today's registration
// date, and upserts the record. On a validation error nothing is written.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Patient, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Gender = strings.TrimSpace(in.Gender)
	in.DOB = strings.TrimSpace(in.DOB)
	in.Phone = strings.TrimSpace(in.Phone)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.Address = strings.TrimSpace(in.Address)

	for _, f := range []struct{ name, value string }{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"gender", in.Gender},
		{"dob", in.DOB},
		{"phone", in.Phone},
		{"nationalId", in.NationalID},
		{"address", in.Address},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%s is required", f.name)
		}
	}

	gender, err := ParseGender(in.Gender)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse(DateLayout, in.DOB); err != nil {
		return nil, fmt.Errorf("invalid dob: %q", in.DOB)
	}

	p := &Patient{
		ID:               s.ids.Generate("P"),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Gender:           gender,
		DOB:              in.DOB,
		Phone:            in.Phone,
		NationalID:       in.NationalID,
		Address:          in.Address,
		Notes:            strings.TrimSpace(in.Notes),
		RegistrationDate: s.now().Format(DateLayout),
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all patients in stored order.
func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.GetAll(ctx)
}

// Find returns the patient with the given id or ErrNotFound.
func (s *Service) Find(ctx context.Context, id string) (*Patient, error) {
	p, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return p, nil
}

// Directory renders the patient listing with derived fields.
func (s *Service) Directory(ctx context.Context) ([]Row, error) {
	patients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Render(patients, s.now(), s.coin), nil
}

// Search renders the directory filtered by term. The second return reports
// that a non-empty term matched nothing in a non-empty roster.
func (s *Service) Search(ctx context.Context, term string) ([]Row, bool, error) {
	rows, err := s.Directory(ctx)
	if err != nil {
		return nil, false, err
	}
	matched, noMatches := SearchRows(rows, term)
	return matched, noMatches, nil
}

// UpdateNotes replaces the patient's notes via a full-record upsert, the
// only mutation path a stored patient has.
func (s *Service) UpdateNotes(ctx context.Context, id, notes string) (*Patient, error) {
	p, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Notes = strings.TrimSpace(notes)
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
