package styles

import "testing"

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"dark", true},
		{"light", true},
		{"", false},
		{"default", false},
		{"DARK", false},
	}
	for _, tt := range tests {
		if got := IsValidTheme(tt.name); got != tt.valid {
			t.Errorf("IsValidTheme(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if got := ThemeDark.Toggle(); got != ThemeLight {
		t.Errorf("ThemeDark.Toggle() = %q, want %q", got, ThemeLight)
	}
	if got := ThemeLight.Toggle(); got != ThemeDark {
		t.Errorf("ThemeLight.Toggle() = %q, want %q", got, ThemeDark)
	}
}

func TestGetPalette(t *testing.T) {
	if got := GetPalette(ThemeLight); *got != *LightPalette() {
		t.Error("GetPalette(light) should return the light palette")
	}
	if got := GetPalette("unknown"); *got != *DarkPalette() {
		t.Error("GetPalette(unknown) should fall back to the dark palette")
	}
}

func TestPalettesDefineAllColors(t *testing.T) {
	for _, name := range BuiltinThemes() {
		p := GetPalette(ThemeName(name))
		colors := map[string]string{
			"Primary":  string(p.Primary),
			"Glow":     string(p.Glow),
			"Text":     string(p.Text),
			"Muted":    string(p.Muted),
			"Surface":  string(p.Surface),
			"Input":    string(p.Input),
			"ReadOnly": string(p.ReadOnly),
			"Track":    string(p.Track),
			"Border":   string(p.Border),
			"Locked":   string(p.Locked),
			"Error":    string(p.Error),
			"Success":  string(p.Success),
		}
		for field, c := range colors {
			if c == "" {
				t.Errorf("%s palette: %s is empty", name, field)
			}
		}
	}
}

func TestNewThemedStyles(t *testing.T) {
	s := NewThemedStyles(ThemeLight)
	if s.Theme != ThemeLight {
		t.Errorf("Theme = %q, want %q", s.Theme, ThemeLight)
	}
	if s.Palette.Primary != LightPalette().Primary {
		t.Errorf("Palette.Primary = %q, want light primary", s.Palette.Primary)
	}

	fallback := NewThemedStyles("neon")
	if fallback.Theme != DefaultTheme {
		t.Errorf("unknown theme resolved to %q, want %q", fallback.Theme, DefaultTheme)
	}
}
