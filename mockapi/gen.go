package mockapi

import (
	"math"
	"math/rand"
	"time"
)

// Source supplies the randomness and clock behind fabricated values. A zero seed is
// replaced with the current time, matching live behavior; tests pass a fixed seed and
// a fixed clock to get byte-identical payloads on every call.
type Source struct {
	rng *rand.Rand
	now func() time.Time
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithClock replaces the wall clock used for timestamp fields.
func WithClock(now func() time.Time) SourceOption {
	return func(s *Source) {
		s.now = now
	}
}

// NewSource creates a Source seeded with seed (0 means seed from the current time).
func NewSource(seed int64, opts ...SourceOption) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Source{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick returns a pseudo-random element of choices. Panics on an empty slice, like
// indexing would.
func Pick[T any](s *Source, choices []T) T {
	return choices[s.rng.Intn(len(choices))]
}

// IntBetween returns a pseudo-random integer in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// FloatBetween returns a pseudo-random float in [lo, hi) rounded to one decimal,
// the precision the simulated APIs report.
func (s *Source) FloatBetween(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	v := lo + s.rng.Float64()*(hi-lo)
	return math.Round(v*10) / 10
}

// Bool returns a pseudo-random bool.
func (s *Source) Bool() bool {
	return s.rng.Intn(2) == 1
}

// Unix returns the clock's current Unix timestamp.
func (s *Source) Unix() int64 {
	return s.now().Unix()
}

// UnixOffset returns the clock's Unix timestamp shifted by d.
func (s *Source) UnixOffset(d time.Duration) int64 {
	return s.now().Add(d).Unix()
}
