// Package ident produces the human-readable record identifiers used across
// the service: a prefix, the current year, the last six digits of the
// unix-millisecond clock, and a three-digit random suffix, e.g.
// P-2024-483920117. Not cryptographically unique; collision odds are
// accepted for this workload.
package ident

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator builds identifiers from an injected clock and random source so
// callers can pin both in tests.
type Generator struct {
	now  func() time.Time
	intn func(n int) int
}

func New() *Generator {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Generator{now: time.Now, intn: r.Intn}
}

// NewWithSources returns a Generator with an explicit clock and random
// source. A nil argument falls back to the real one.
func NewWithSources(now func() time.Time, intn func(n int) int) *Generator {
	g := New()
	if now != nil {
		g.now = now
	}
	if intn != nil {
		g.intn = intn
	}
	return g
}

// Generate returns "<prefix>-<year>-<9 digits>": six digits of timestamp
// followed by three random digits, both zero-padded.
func (g *Generator) Generate(prefix string) string {
	now := g.now()
	millis := now.UnixMilli()
	return fmt.Sprintf("%s-%d-%06d%03d", prefix, now.Year(), millis%1_000_000, g.intn(1000))
}
