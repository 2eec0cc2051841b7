package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = ThemeDark

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{string(ThemeDark), string(ThemeLight)}
}

// IsValidTheme checks if a theme name is valid.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// Toggle returns the other built-in theme.
func (t ThemeName) Toggle() ThemeName {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Brand accent (boost readout, slider fill, focus)
	Primary lipgloss.Color
	// Glow is the far end of the slider gradient
	Glow lipgloss.Color
	// Text is primary text
	Text lipgloss.Color
	// Muted is de-emphasized text (hints, scale markers, help)
	Muted lipgloss.Color
	// Surface is the card background
	Surface lipgloss.Color
	// Input is the background of an editable amount
	Input lipgloss.Color
	// ReadOnly is the background of a derived amount
	ReadOnly lipgloss.Color
	// Track is the empty part of a slider
	Track lipgloss.Color
	// Border is panel borders
	Border lipgloss.Color
	// Locked is the active lock badge
	Locked lipgloss.Color

	Error   lipgloss.Color
	Success lipgloss.Color
}

// DarkPalette returns the dark theme palette.
func DarkPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#FF004D"),
		Glow:     lipgloss.Color("#FF6B9A"),
		Text:     lipgloss.Color("#F5F5F5"),
		Muted:    lipgloss.Color("#9CA3AF"),
		Surface:  lipgloss.Color("#161616"),
		Input:    lipgloss.Color("#262626"),
		ReadOnly: lipgloss.Color("#1F1F1F"),
		Track:    lipgloss.Color("#3F3F46"),
		Border:   lipgloss.Color("#52525B"),
		Locked:   lipgloss.Color("#F5F5F5"),
		Error:    lipgloss.Color("#F87171"),
		Success:  lipgloss.Color("#34D399"),
	}
}

// LightPalette returns the light theme palette.
func LightPalette() *ColorPalette {
	return &ColorPalette{
		Primary:  lipgloss.Color("#E6004A"),
		Glow:     lipgloss.Color("#FF4F87"),
		Text:     lipgloss.Color("#111111"),
		Muted:    lipgloss.Color("#6B7280"),
		Surface:  lipgloss.Color("#FFFFFF"),
		Input:    lipgloss.Color("#F2F2F2"),
		ReadOnly: lipgloss.Color("#E5E7EB"),
		Track:    lipgloss.Color("#D4D4D8"),
		Border:   lipgloss.Color("#D1D5DB"),
		Locked:   lipgloss.Color("#111111"),
		Error:    lipgloss.Color("#DC2626"),
		Success:  lipgloss.Color("#059669"),
	}
}

// GetPalette returns the palette for a theme name.
// Unknown names get the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeLight:
		return LightPalette()
	default:
		return DarkPalette()
	}
}
