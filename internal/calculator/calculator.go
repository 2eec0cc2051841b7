package calculator

import (
	"math"

	"github.com/Iron-Ham/veboost/internal/boost"
	"github.com/Iron-Ham/veboost/internal/event"
	"github.com/Iron-Ham/veboost/internal/logging"
)

// Calculator owns a State and applies edits to it.
type Calculator struct {
	state  State
	seed   Seed
	bus    *event.Bus
	logger *logging.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithBus publishes change events on bus.
func WithBus(bus *event.Bus) Option {
	return func(c *Calculator) {
		c.bus = bus
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Calculator from seed. The field derived by the seed's lock is
// recomputed immediately so the initial state is consistent.
func New(seed Seed, opts ...Option) *Calculator {
	c := &Calculator{
		seed:   seed,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithComponent("calculator")
	c.state = seed.state()
	c.rederive()
	return c
}

// State returns a copy of the current state.
func (c *Calculator) State() State { return c.state }

// Lock returns the current lock state.
func (c *Calculator) Lock() LockState { return c.state.Lock }

// Boost returns the current boost.
func (c *Calculator) Boost() float64 { return c.state.Boost }

// UserA returns the user's veBTC amount.
func (c *Calculator) UserA() float64 { return c.state.UserA }

// UserB returns the user's veMEZO amount.
func (c *Calculator) UserB() float64 { return c.state.UserB }

// TotalA returns the system veBTC total.
func (c *Calculator) TotalA() float64 { return c.state.TotalA }

// TotalB returns the system veMEZO total.
func (c *Calculator) TotalB() float64 { return c.state.TotalB }

// EditA sets the user's veBTC amount. The edit is ignored while veBTC is
// the derived field; the return value reports whether it was applied.
func (c *Calculator) EditA(v float64) bool {
	if c.state.Lock == LockA {
		c.logger.Debug("ignored edit of locked field", "field", FieldA.String(), "value", v)
		return false
	}
	c.state.UserA = v
	switch c.state.Lock {
	case LockNone:
		c.recomputeBoost()
	case LockB:
		c.recomputeB()
	}
	c.publish(event.CauseEditA)
	return true
}

// EditB sets the user's veMEZO amount. The edit is ignored while veMEZO is
// the derived field.
func (c *Calculator) EditB(v float64) bool {
	if c.state.Lock == LockB {
		c.logger.Debug("ignored edit of locked field", "field", FieldB.String(), "value", v)
		return false
	}
	c.state.UserB = v
	switch c.state.Lock {
	case LockNone:
		c.recomputeBoost()
	case LockA:
		c.recomputeA()
	}
	c.publish(event.CauseEditB)
	return true
}

// EditBoost sets the target boost, clamped to [1, 5], and re-derives the
// locked amount. Without a lock the boost is derived, so the call is a
// caller error: state is left unchanged and false is returned.
func (c *Calculator) EditBoost(v float64) bool {
	if c.state.Lock == LockNone {
		c.logger.Debug("ignored boost edit without a lock", "value", v)
		return false
	}
	c.state.Boost = boost.ClampBoost(v)
	c.rederive()
	c.publish(event.CauseEditBoost)
	return true
}

// EditTotals replaces both system totals and re-derives the field selected
// by the current lock.
func (c *Calculator) EditTotals(totalA, totalB float64) {
	c.state.TotalA = totalA
	c.state.TotalB = totalB
	c.rederive()
	c.publish(event.CauseEditTotals)
}

// ToggleLock handles a click on target's lock. Clicking the active lock (or
// passing LockNone) unlocks and snaps the boost to the current A and B.
// Clicking any other lock switches to it and leaves every value as is.
func (c *Calculator) ToggleLock(target LockState) {
	previous := c.state.Lock
	snapped := false

	if target == previous || target == LockNone || !target.Valid() {
		c.state.Lock = LockNone
		c.recomputeBoost()
		snapped = true
	} else {
		c.state.Lock = target
	}

	c.logger.Debug("lock toggled",
		"previous", previous.String(),
		"current", c.state.Lock.String(),
		"snapped", snapped,
	)
	c.publish(event.CauseToggleLock)
	if c.bus != nil && previous != c.state.Lock {
		c.bus.Publish(event.NewLockChangedEvent(previous.String(), c.state.Lock.String(), snapped))
	}
}

// SetMaxA sets the veBTC slider range. Negative values are stored as 0.
func (c *Calculator) SetMaxA(v float64) {
	c.state.MaxA = math.Max(v, 0)
	c.afterMaxChange()
}

// SetMaxB sets the veMEZO slider range. Negative values are stored as 0.
func (c *Calculator) SetMaxB(v float64) {
	c.state.MaxB = math.Max(v, 0)
	c.afterMaxChange()
}

func (c *Calculator) afterMaxChange() {
	if c.seed.ClampDerived {
		c.rederive()
	}
	c.publish(event.CauseSetMax)
}

// Reset restores the seed state.
func (c *Calculator) Reset() {
	previous := c.state.Lock
	c.state = c.seed.state()
	c.rederive()
	c.publish(event.CauseReset)
	if c.bus != nil && previous != c.state.Lock {
		c.bus.Publish(event.NewLockChangedEvent(previous.String(), c.state.Lock.String(), false))
	}
}

// Subscribe registers fn to run after every state change. It returns an ID
// for Unsubscribe, or "" when the calculator has no bus.
func (c *Calculator) Subscribe(fn func(event.StateChangedEvent)) string {
	if c.bus == nil {
		return ""
	}
	return c.bus.Subscribe(event.TypeStateChanged, func(e event.Event) {
		if changed, ok := e.(event.StateChangedEvent); ok {
			fn(changed)
		}
	})
}

// Unsubscribe removes a subscription created by Subscribe.
func (c *Calculator) Unsubscribe(id string) bool {
	if c.bus == nil {
		return false
	}
	return c.bus.Unsubscribe(id)
}

// rederive recomputes whichever field the current lock derives.
func (c *Calculator) rederive() {
	switch c.state.Lock {
	case LockA:
		c.recomputeA()
	case LockB:
		c.recomputeB()
	default:
		c.recomputeBoost()
	}
}

func (c *Calculator) recomputeBoost() {
	s := &c.state
	s.Boost = boost.ComputeBoost(s.UserA, s.UserB, s.TotalA, s.TotalB)
}

func (c *Calculator) recomputeA() {
	s := &c.state
	s.UserA = c.clamp(boost.SolveA(s.Boost, s.UserB, s.TotalA, s.TotalB), s.MaxA)
}

func (c *Calculator) recomputeB() {
	s := &c.state
	s.UserB = c.clamp(boost.SolveB(s.Boost, s.UserA, s.TotalA, s.TotalB), s.MaxB)
}

// clamp caps a derived amount at limit when ClampDerived is set and the
// limit is positive.
func (c *Calculator) clamp(v, limit float64) float64 {
	if c.seed.ClampDerived && limit > 0 && v > limit {
		return limit
	}
	return v
}

func (c *Calculator) publish(cause event.Cause) {
	s := c.state
	c.logger.Debug("state changed",
		"cause", string(cause),
		"user_a", s.UserA,
		"user_b", s.UserB,
		"total_a", s.TotalA,
		"total_b", s.TotalB,
		"boost", s.Boost,
		"lock", s.Lock.String(),
	)
	if c.bus == nil {
		return
	}
	c.bus.Publish(event.NewStateChangedEvent(cause, s.UserA, s.UserB, s.TotalA, s.TotalB, s.Boost, s.Lock.String()))
}
