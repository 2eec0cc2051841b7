// Package util provides layout helpers shared by the terminal views. All
// widths are visual columns, so styled strings measure correctly.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateANSI truncates a string to maxWidth visual columns, adding "..." if truncated.
// ANSI escape codes and wide characters are preserved.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation
	return ansi.Truncate(s, maxWidth, "...")
}

// JoinEdges lays out left and right on one line of width columns, pushing
// right to the far edge. At least one space separates them.
func JoinEdges(left, right string, width int) string {
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// Center left-pads s so it sits in the middle of width columns.
func Center(s string, width int) string {
	pad := max(0, (width-lipgloss.Width(s))/2)
	return strings.Repeat(" ", pad) + s
}
