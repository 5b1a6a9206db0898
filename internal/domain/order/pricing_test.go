package order

import "testing"

func TestPriceOf(t *testing.T) {
	cases := []struct {
		name  string
		tests []string
		want  float64
	}{
		{"cbc and lipid", []string{"cbc", "lipid"}, 150},
		{"empty selection", []string{}, 0},
		{"unknown code", []string{"mystery"}, 0},
		{"unknown mixed with known", []string{"cbc", "mystery"}, 50},
		{"full panel", []string{"cbc", "lipid", "liver", "kidney", "urinalysis", "glucose", "thyroid"}, 610},
	}
	for _, tc := range cases {
		if got := PriceOf(tc.tests); got != tc.want {
			t.Errorf("%s: PriceOf = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("cbc"); got != "Complete Blood Count" {
		t.Errorf("expected display name, got %s", got)
	}
	if got := DisplayName("mystery"); got != "mystery" {
		t.Errorf("expected code fallback, got %s", got)
	}
}
