package calculator

import (
	"fmt"
	"strings"
)

// LockState selects which quantity the calculator derives.
type LockState string

const (
	LockNone LockState = "none" // boost derived from A and B
	LockA    LockState = "btc"  // veBTC derived from boost and B
	LockB    LockState = "mezo" // veMEZO derived from boost and A
)

// ValidLockStates returns the canonical lock names.
func ValidLockStates() []string {
	return []string{string(LockNone), string(LockA), string(LockB)}
}

// ParseLockState accepts the canonical names and a few aliases
// ("a", "b", "vebtc", "vemezo", "lock_a", "lock_b"), case-insensitively.
func ParseLockState(s string) (LockState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return LockNone, nil
	case "btc", "vebtc", "a", "lock_a":
		return LockA, nil
	case "mezo", "vemezo", "b", "lock_b":
		return LockB, nil
	}
	return "", fmt.Errorf("unknown lock %q (want one of %s)", s, strings.Join(ValidLockStates(), ", "))
}

// String returns the canonical lock name.
func (l LockState) String() string { return string(l) }

// Valid reports whether l is one of the three lock states.
func (l LockState) Valid() bool {
	return l == LockNone || l == LockA || l == LockB
}

// Derived returns the field this lock state recomputes.
func (l LockState) Derived() Field {
	switch l {
	case LockA:
		return FieldA
	case LockB:
		return FieldB
	default:
		return FieldBoost
	}
}

// Field identifies one of the three related quantities.
type Field int

const (
	FieldA Field = iota
	FieldB
	FieldBoost
)

// String returns a display name for the field.
func (f Field) String() string {
	switch f {
	case FieldA:
		return "veBTC"
	case FieldB:
		return "veMEZO"
	case FieldBoost:
		return "boost"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}
