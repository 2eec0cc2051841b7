// Package boost implements the veBTC/veMEZO boost curve and its inverses.
//
// The boost a user earns on a veBTC lock (A) grows with the share of veMEZO
// (B) they hold relative to their share of veBTC:
//
//	boost = 1 + 4 * (totalA / userA) * (userB / totalB)
//
// clamped to [MinBoost, MaxBoost]. [SolveA] and [SolveB] invert the curve
// for one side given a target boost and the other side.
//
// Every function is total. Non-positive (or NaN) amounts short-circuit to
// the neutral result (boost 1, amount 0) instead of dividing by zero, so
// callers never need to special-case an empty or invalid input.
package boost
