package event

import "time"

// Event types published by the calculator.
const (
	TypeStateChanged = "calculator.changed"
	TypeLockChanged  = "calculator.lock_changed"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// Cause names the operation that produced a StateChangedEvent.
type Cause string

// Causes, one per calculator operation.
const (
	CauseEditA      Cause = "edit_a"
	CauseEditB      Cause = "edit_b"
	CauseEditBoost  Cause = "edit_boost"
	CauseEditTotals Cause = "edit_totals"
	CauseToggleLock Cause = "toggle_lock"
	CauseSetMax     Cause = "set_max"
	CauseReset      Cause = "reset"
)

// StateChangedEvent carries a snapshot of the calculator after a mutation.
type StateChangedEvent struct {
	baseEvent
	Cause  Cause
	UserA  float64 // veBTC
	UserB  float64 // veMEZO
	TotalA float64
	TotalB float64
	Boost  float64
	Lock   string
}

// NewStateChangedEvent creates a StateChangedEvent.
func NewStateChangedEvent(cause Cause, userA, userB, totalA, totalB, boost float64, lock string) StateChangedEvent {
	return StateChangedEvent{
		baseEvent: newBaseEvent(TypeStateChanged),
		Cause:     cause,
		UserA:     userA,
		UserB:     userB,
		TotalA:    totalA,
		TotalB:    totalB,
		Boost:     boost,
		Lock:      lock,
	}
}

// LockChangedEvent is emitted when the lock moves between states.
// Snapped is true when leaving a lock recomputed the boost.
type LockChangedEvent struct {
	baseEvent
	Previous string
	Current  string
	Snapped  bool
}

// NewLockChangedEvent creates a LockChangedEvent.
func NewLockChangedEvent(previous, current string, snapped bool) LockChangedEvent {
	return LockChangedEvent{
		baseEvent: newBaseEvent(TypeLockChanged),
		Previous:  previous,
		Current:   current,
		Snapped:   snapped,
	}
}
