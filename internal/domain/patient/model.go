package patient

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date form every date field is persisted in.
const DateLayout = "2006-01-02"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderOther:
		return Gender(s), nil
	}
	return "", fmt.Errorf("invalid gender: %q", s)
}

// Patient is a registered patient record. Field names match the persisted
// collection layout; dates are stored as YYYY-MM-DD strings. The id is
// immutable once assigned and uniquely identifies the record in the store.
type Patient struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Gender           Gender `json:"gender"`
	DOB              string `json:"dob"`
	Phone            string `json:"phone"`
	NationalID       string `json:"nationalId"`
	Address          string `json:"address"`
	Notes            string `json:"notes,omitempty"`
	LastVisit        string `json:"lastVisit,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns completed years between the date of birth and now: calendar
// years elapsed, minus one when now's month and day precede the birthday.
// An unparseable date of birth yields -1.
func (p *Patient) Age(now time.Time) int {
	dob, err := time.Parse(DateLayout, p.DOB)
	if err != nil {
		return -1
	}
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
