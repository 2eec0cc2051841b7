// Package numfmt converts between the calculator's float64 values and the
// strings shown in and typed into the terminal UI.
package numfmt

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Decimals is the maximum number of fraction digits Format renders.
const Decimals = 2

var (
	// leadingFloat matches the numeric prefix a lenient parser accepts.
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	compactForm  = regexp.MustCompile(`^(-?\d+\.?\d*)([BMK])?$`)
)

// Sanitize filters a raw keystroke buffer down to digits and '.'.
// It returns false when the result would hold more than one '.', in which
// case the caller keeps its previous value.
func Sanitize(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	dots := 0
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			dots++
			b.WriteRune(r)
		}
	}
	if dots > 1 {
		return "", false
	}
	return b.String(), true
}

// Parse reads a number, ignoring thousands separators. Like a lenient float
// parser it accepts a numeric prefix ("12abc" is 12). Anything without one
// parses as 0.
func Parse(s string) float64 {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	prefix := leadingFloat.FindString(clean)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// ParseCompact reads values such as "1.5K", "150m" or "2B". Input that is not
// in compact form is handed to Parse.
func ParseCompact(s string) float64 {
	if s == "" {
		return 0
	}
	clean := strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(s, ",", "")))
	m := compactForm.FindStringSubmatch(clean)
	if m == nil {
		return Parse(s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "B":
		return v * 1e9
	case "M":
		return v * 1e6
	case "K":
		return v * 1e3
	}
	return v
}

// Format renders v with thousands separators and at most two decimals,
// dropping trailing zeros: 102273.89, 150,000,000, 2.5.
// Non-finite values render as "".
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return humanize.CommafWithDigits(r, Decimals)
}

// FormatCompact renders large values with a K, M or B suffix and one
// optional decimal. Values below 1000 use Format.
func FormatCompact(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return sign + compactDigits(abs/1e9) + "B"
	case abs >= 1e6:
		return sign + compactDigits(abs/1e6) + "M"
	case abs >= 1e3:
		return sign + compactDigits(abs/1e3) + "K"
	}
	return Format(v)
}

func compactDigits(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}

// FormatBoost renders a boost multiplier with two decimals.
func FormatBoost(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
