package styles

import "github.com/charmbracelet/lipgloss"

// ThemedStyles contains all the lipgloss styles built from a color palette.
// This allows styles to be regenerated when the theme changes.
type ThemedStyles struct {
	Theme   ThemeName
	Palette *ColorPalette

	// Convenience styles for colors
	Primary lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Card holds the whole calculator
	Card lipgloss.Style

	// Amount rows
	Amount         lipgloss.Style
	AmountReadOnly lipgloss.Style
	AmountFocused  lipgloss.Style
	Badge          lipgloss.Style
	BadgeReadOnly  lipgloss.Style
	LockOn         lipgloss.Style
	LockOff        lipgloss.Style
	Cursor         lipgloss.Style

	// Sections
	SectionTitle lipgloss.Style
	Divider      lipgloss.Style

	// Boost readout and sliders
	BoostValue     lipgloss.Style
	BoostUnit      lipgloss.Style
	SliderFill     lipgloss.Style
	SliderTrack    lipgloss.Style
	SliderThumb    lipgloss.Style
	SliderDisabled lipgloss.Style
	ScaleMarker    lipgloss.Style
	Hint           lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
}

// NewThemedStyles builds the style set for a named theme.
func NewThemedStyles(name ThemeName) *ThemedStyles {
	if !IsValidTheme(string(name)) {
		name = DefaultTheme
	}
	p := GetPalette(name)

	return &ThemedStyles{
		Theme:   name,
		Palette: p,

		Primary: lipgloss.NewStyle().Foreground(p.Primary),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Text:    lipgloss.NewStyle().Foreground(p.Text),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		Amount: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Input).
			Padding(0, 1),
		AmountReadOnly: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted).
			Background(p.ReadOnly).
			Padding(0, 1),
		AmountFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Input).
			Underline(true).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Padding(0, 1),
		BadgeReadOnly: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted).
			Padding(0, 1),
		LockOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Surface).
			Background(p.Locked).
			Padding(0, 1),
		LockOff: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted),
		Divider: lipgloss.NewStyle().
			Foreground(p.Border),

		BoostValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		BoostUnit: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Muted),
		SliderFill: lipgloss.NewStyle().
			Foreground(p.Primary),
		SliderTrack: lipgloss.NewStyle().
			Foreground(p.Track),
		SliderThumb: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Glow),
		SliderDisabled: lipgloss.NewStyle().
			Foreground(p.Track).
			Faint(true),
		ScaleMarker: lipgloss.NewStyle().
			Foreground(p.Muted),
		Hint: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Muted),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),
		SuccessMsg: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
	}
}
