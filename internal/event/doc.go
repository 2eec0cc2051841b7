// Package event provides the change-notification bus for the calculator.
//
// The calculator publishes an event after every mutation so renderers and
// loggers can react without the calculator knowing who is listening. This
// is the listener half of the state-container pattern: consumers either
// subscribe here or simply re-read calculator state after each call.
//
// # Main Types
//
//   - [Event]: interface implemented by every event (EventType, Timestamp)
//   - [Bus]: synchronous pub-sub dispatcher
//   - [Handler]: func(Event)
//
// # Events
//
//   - [StateChangedEvent]: "calculator.changed", emitted after any edit
//   - [LockChangedEvent]: "calculator.lock_changed", emitted on lock transitions
//
// # Delivery
//
// Publish runs handlers on the caller's goroutine before it returns.
// Specific handlers run first, then wildcard handlers, each group in
// registration order. A panicking handler is recovered and logged so the
// remaining handlers still run.
//
// The bus is not safe for concurrent use. The calculator is driven from a
// single event loop, and so is its bus.
//
// # Basic Usage
//
//	bus := event.NewBus()
//	id := bus.Subscribe(event.TypeStateChanged, func(e event.Event) {
//	    changed := e.(event.StateChangedEvent)
//	    fmt.Printf("boost is now %.2f\n", changed.Boost)
//	})
//	defer bus.Unsubscribe(id)
package event
