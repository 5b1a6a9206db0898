package patient

import (
	"strings"
	"time"
)

// Row is the directory view-model for one patient: the stored fields a
// directory listing shows plus the render-time derived ones.
type Row struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LastVisit string `json:"lastVisit"`
	Age       int    `json:"age"`
	// BillingStatus is a presentation placeholder randomized per render.
	// It is not derived from any payment record.
	BillingStatus string `json:"billingStatus"`
}

// Render builds directory rows from stored patients. Output is pure given
// the patients, the current time, and the coin flips feeding the billing
// placeholder; rendering twice without mutation differs only in that field.
func Render(patients []Patient, now time.Time, coin func() bool) []Row {
	rows := make([]Row, 0, len(patients))
	for i := range patients {
		p := &patients[i]
		lastVisit := p.LastVisit
		if lastVisit == "" {
			lastVisit = "No visits"
		}
		billing := "Unpaid"
		if coin() {
			billing = "Paid"
		}
		rows = append(rows, Row{
			ID:            p.ID,
			Name:          p.FullName(),
			Phone:         p.Phone,
			LastVisit:     lastVisit,
			Age:           p.Age(now),
			BillingStatus: billing,
		})
	}
	return rows
}

// SearchRows filters rows by a case-insensitive substring match over the
// concatenated display fields. An empty term matches everything. The second
// return is true only when a non-empty term matched nothing against a
// non-empty roster, so callers can show "no results" instead of an empty
// table that looks like an empty store.
func SearchRows(rows []Row, term string) ([]Row, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows, false
	}

	matched := make([]Row, 0, len(rows))
	for _, r := range rows {
		haystack := strings.ToLower(strings.Join([]string{
			r.ID, r.Name, r.Phone, r.LastVisit, r.BillingStatus,
		}, " "))
		if strings.Contains(haystack, term) {
			matched = append(matched, r)
		}
	}
	return matched, len(matched) == 0 && len(rows) > 0
}
