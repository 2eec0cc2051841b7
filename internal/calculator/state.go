package calculator

import "github.com/Iron-Ham/veboost/internal/boost"

// Display ranges for the system totals sliders.
const (
	DefaultMaxA = 10000.0
	DefaultMaxB = 500000000.0
)

// State is a snapshot of the calculator.
// A is the user's veBTC, B the user's veMEZO.
type State struct {
	UserA  float64
	UserB  float64
	TotalA float64
	TotalB float64
	Boost  float64
	Lock   LockState

	// MaxA and MaxB bound the totals sliders. They never enter the formula.
	MaxA float64
	MaxB float64
}

// Derived returns the quantity the current lock recomputes.
func (s State) Derived() Field {
	return s.Lock.Derived()
}

// Editable reports whether the user may edit f in this state.
// The derived field is read-only.
func (s State) Editable(f Field) bool {
	return s.Derived() != f
}

// Seed is the initial configuration of a session.
type Seed struct {
	UserA  float64
	UserB  float64
	TotalA float64
	TotalB float64
	Boost  float64
	Lock   LockState
	MaxA   float64
	MaxB   float64

	// ClampDerived caps derived A and B at MaxA and MaxB.
	ClampDerived bool
}

// DefaultSeed returns the launch configuration: 2 veBTC at a 5x target with
// veMEZO derived.
func DefaultSeed() Seed {
	return Seed{
		UserA:  2.00,
		UserB:  102273.89,
		TotalA: 2933.3,
		TotalB: 150000000,
		Boost:  boost.MaxBoost,
		Lock:   LockB,
		MaxA:   DefaultMaxA,
		MaxB:   DefaultMaxB,
	}
}

// state builds the initial State for the seed. An invalid lock falls back to
// LockNone and the boost is clamped; the derived field is recomputed by the
// caller.
func (s Seed) state() State {
	lock := s.Lock
	if !lock.Valid() {
		lock = LockNone
	}
	return State{
		UserA:  s.UserA,
		UserB:  s.UserB,
		TotalA: s.TotalA,
		TotalB: s.TotalB,
		Boost:  boost.ClampBoost(s.Boost),
		Lock:   lock,
		MaxA:   s.MaxA,
		MaxB:   s.MaxB,
	}
}
