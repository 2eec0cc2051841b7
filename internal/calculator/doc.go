// Package calculator holds the interactive boost calculator state and the
// lock state machine that decides, on every edit, which quantity is derived.
//
// # Lock States
//
// Exactly one of the three quantities is derived at any time:
//
//   - [LockNone]: boost is derived from veBTC (A) and veMEZO (B)
//   - [LockA]: veBTC is derived from boost and veMEZO
//   - [LockB]: veMEZO is derived from boost and veBTC
//
// [Calculator.ToggleLock] on the active lock returns to [LockNone] and snaps
// the boost back to what A and B imply. Toggling any other lock switches to it
// without recomputing anything; only later edits are routed differently.
//
// # Events
//
// When constructed with [WithBus], every mutation publishes an
// event.StateChangedEvent, and lock transitions also publish an
// event.LockChangedEvent. Renderers can subscribe or simply re-read
// [Calculator.State] after each call.
//
// A Calculator is owned by a single event loop and is not safe for
// concurrent use.
package calculator
