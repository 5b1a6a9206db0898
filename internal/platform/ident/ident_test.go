package ident

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

func TestGenerate_Format(t *testing.T) {
	g := New()
	re := regexp.MustCompile(`^P-\d{4}-\d{9}$`)
	for i := 0; i < 50; i++ {
		id := g.Generate("P")
		if !re.MatchString(id) {
			t.Fatalf("id %q does not match expected format", id)
		}
	}
}

func TestGenerate_OrderPrefix(t *testing.T) {
	g := New()
	id := g.Generate("ORD")
	if !regexp.MustCompile(`^ORD-\d{4}-\d{9}$`).MatchString(id) {
		t.Errorf("id %q does not match expected format", id)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 483_000_000, time.UTC)
	}
	g := NewWithSources(clock, func(int) int { return 7 })

	millis := clock().UnixMilli() % 1_000_000
	want := fmt.Sprintf("P-2024-%06d007", millis)
	if got := g.Generate("P"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestGenerate_ZeroPadsTimestamp(t *testing.T) {
	// A clock landing on a small millisecond remainder must still yield
	// six timestamp digits.
	clock := func() time.Time {
		return time.Unix(0, 42*int64(time.Millisecond))
	}
	g := NewWithSources(clock, func(int) int { return 0 })

	id := g.Generate("P")
	if !regexp.MustCompile(`^P-\d{4}-000042000$`).MatchString(id) {
		t.Errorf("expected zero-padded timestamp suffix, got %q", id)
	}
}
