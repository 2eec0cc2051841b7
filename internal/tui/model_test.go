package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/veboost/internal/calculator"
	"github.com/Iron-Ham/veboost/internal/tui/keymap"
	"github.com/Iron-Ham/veboost/internal/tui/styles"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(calculator.New(calculator.DefaultSeed()), Options{Theme: "dark"})
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to the model in order.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		var ok bool
		m, ok = updated.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", updated)
		}
	}
	return m
}

// typeText sends each rune of s as its own key press.
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, string(r))
	}
	return m
}

func closeTo(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t)

	if m.mode != keymap.ModeNormal {
		t.Errorf("mode = %q, want %q", m.mode, keymap.ModeNormal)
	}
	if m.focus != fieldBTC {
		t.Errorf("focus = %v, want %v", m.focus, fieldBTC)
	}
	if m.showTotals {
		t.Error("totals panel should start collapsed")
	}
	if m.Theme() != styles.ThemeDark {
		t.Errorf("Theme() = %q, want %q", m.Theme(), styles.ThemeDark)
	}
}

func TestFocusCycle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "tab")
	if m.focus != fieldMEZO {
		t.Fatalf("focus after tab = %v, want %v", m.focus, fieldMEZO)
	}
	m = press(t, m, "tab")
	if m.focus != fieldBoost {
		t.Fatalf("focus after 2 tabs = %v, want %v", m.focus, fieldBoost)
	}
	m = press(t, m, "tab")
	if m.focus != fieldBTC {
		t.Fatalf("focus should wrap to %v, got %v", fieldBTC, m.focus)
	}
	m = press(t, m, "shift+tab")
	if m.focus != fieldBoost {
		t.Fatalf("focus after shift+tab = %v, want %v", m.focus, fieldBoost)
	}
}

func TestFocusCycle_WithTotals(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s")
	if !m.showTotals {
		t.Fatal("s should open the totals panel")
	}

	want := []field{fieldMEZO, fieldTotalBTC, fieldMaxBTC, fieldTotalMEZO, fieldMaxMEZO, fieldBoost, fieldBTC}
	for i, f := range want {
		m = press(t, m, "j")
		if m.focus != f {
			t.Fatalf("step %d: focus = %v, want %v", i, m.focus, f)
		}
	}

	// Collapsing the panel moves focus off hidden fields
	m = press(t, m, "j", "j", "s")
	if m.focus.system() {
		t.Errorf("focus %v should not stay on a hidden field", m.focus)
	}
}

func TestToggleLockKeys(t *testing.T) {
	m := newTestModel(t)

	// veMEZO is locked by default; space on veBTC switches the lock
	m = press(t, m, "space")
	if got := m.calc.Lock(); got != calculator.LockA {
		t.Fatalf("lock = %q, want %q", got, calculator.LockA)
	}

	// Toggling the active lock unlocks and snaps boost
	m = press(t, m, "b")
	if got := m.calc.Lock(); got != calculator.LockNone {
		t.Fatalf("lock = %q, want %q", got, calculator.LockNone)
	}
	if !strings.Contains(m.infoMsg, "Unlocked") {
		t.Errorf("infoMsg = %q, want unlock notice", m.infoMsg)
	}

	m = press(t, m, "m")
	if got := m.calc.Lock(); got != calculator.LockB {
		t.Errorf("lock = %q, want %q", got, calculator.LockB)
	}
}

func TestSpaceOnBoostReleasesLock(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "space")

	if got := m.calc.Lock(); got != calculator.LockNone {
		t.Fatalf("lock = %q, want %q", got, calculator.LockNone)
	}

	m = press(t, m, "space")
	if m.infoMsg != lockHint {
		t.Errorf("infoMsg = %q, want %q", m.infoMsg, lockHint)
	}
}

func TestEditBTC_LiveUpdatesDerivedMEZO(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "enter")
	if m.mode != keymap.ModeEdit {
		t.Fatalf("mode = %q, want edit", m.mode)
	}
	if got := m.editor.Value(); got != "2" {
		t.Fatalf("editor starts with %q, want %q", got, "2")
	}

	m = typeText(t, m, "1")
	if got := m.calc.UserA(); got != 21 {
		t.Fatalf("UserA = %v, want 21 while typing", got)
	}
	if !closeTo(m.calc.UserB(), 1073875.84, 0.01) {
		t.Errorf("UserB = %v, want ~1073875.84", m.calc.UserB())
	}

	m = press(t, m, "enter")
	if m.mode != keymap.ModeNormal {
		t.Errorf("mode = %q, want normal after enter", m.mode)
	}
	if got := m.calc.UserA(); got != 21 {
		t.Errorf("UserA = %v, want 21 after confirm", got)
	}
}

func TestEdit_KeystrokeFilter(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "enter", "backspace")
	m = typeText(t, m, "1a.5")

	if got := m.editor.Value(); got != "1.5" {
		t.Fatalf("editor = %q, want %q", got, "1.5")
	}

	// A second decimal point is rejected outright
	m = typeText(t, m, ".")
	if got := m.editor.Value(); got != "1.5" {
		t.Errorf("editor = %q, want %q after second '.'", got, "1.5")
	}
	if got := m.calc.UserA(); got != 1.5 {
		t.Errorf("UserA = %v, want 1.5", got)
	}
}

func TestEdit_EscReverts(t *testing.T) {
	m := newTestModel(t)
	before := m.calc.State()

	m = press(t, m, "enter")
	m = typeText(t, m, "99")
	m = press(t, m, "esc")

	if m.mode != keymap.ModeNormal {
		t.Errorf("mode = %q, want normal", m.mode)
	}
	if got := m.calc.State(); got != before {
		t.Errorf("state after esc = %+v, want %+v", got, before)
	}
}

func TestEdit_DerivedFieldRefused(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "enter")

	if m.mode != keymap.ModeNormal {
		t.Fatalf("mode = %q, derived veMEZO should not open the editor", m.mode)
	}
	if !strings.Contains(m.errorMsg, "veMEZO") {
		t.Errorf("errorMsg = %q, want mention of veMEZO", m.errorMsg)
	}
}

func TestEditBoost(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab", "enter")
	if m.mode != keymap.ModeEdit {
		t.Fatalf("mode = %q, want edit", m.mode)
	}

	for i := 0; i < len("5.00"); i++ {
		m = press(t, m, "backspace")
	}
	m = typeText(t, m, "3")
	m = press(t, m, "enter")

	if got := m.calc.Boost(); got != 3 {
		t.Errorf("Boost = %v, want 3", got)
	}
	s := m.calc.State()
	if !closeTo(s.UserB, 2*(3-1)*s.TotalB/(4*s.TotalA), 1e-6) {
		t.Errorf("UserB = %v not derived from boost 3", s.UserB)
	}
}

func TestBoostSlider(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab", "tab")

	m = press(t, m, "left")
	if got := m.calc.Boost(); got != 4.99 {
		t.Fatalf("Boost = %v, want 4.99", got)
	}
	m = press(t, m, "shift+left")
	if got := m.calc.Boost(); got != 4.89 {
		t.Fatalf("Boost = %v, want 4.89", got)
	}
	m = press(t, m, "L", "L")
	if got := m.calc.Boost(); got != 5 {
		t.Errorf("Boost = %v, want clamp at 5", got)
	}
}

func TestBoostSlider_DisabledWithoutLock(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "m", "tab", "tab")
	before := m.calc.Boost()

	m = press(t, m, "right")
	if m.calc.Boost() != before {
		t.Errorf("Boost moved to %v without a lock", m.calc.Boost())
	}
	if m.infoMsg != lockHint {
		t.Errorf("infoMsg = %q, want %q", m.infoMsg, lockHint)
	}
}

func TestTotalsSlider(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "tab")
	if m.focus != fieldTotalBTC {
		t.Fatalf("focus = %v, want %v", m.focus, fieldTotalBTC)
	}

	m = press(t, m, "right")
	s := m.calc.State()
	if !closeTo(s.TotalA, 2933.3+10, 1e-9) {
		t.Errorf("TotalA = %v, want 2943.3 (max/1000 step)", s.TotalA)
	}
	if s.Boost != 5 {
		t.Errorf("Boost = %v, want 5 with veMEZO locked", s.Boost)
	}
}

func TestEditMax(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "s", "tab", "tab", "tab", "tab", "tab")
	if m.focus != fieldMaxMEZO {
		t.Fatalf("focus = %v, want %v", m.focus, fieldMaxMEZO)
	}

	m = press(t, m, "enter")
	for i, n := 0, len(m.editor.Value()); i < n; i++ {
		m = press(t, m, "backspace")
	}
	m = typeText(t, m, "1B")
	m = press(t, m, "enter")

	if got := m.calc.State().MaxB; got != 1e9 {
		t.Errorf("MaxB = %v, want 1e9", got)
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "t")
	if m.Theme() != styles.ThemeLight {
		t.Errorf("Theme() = %q, want %q", m.Theme(), styles.ThemeLight)
	}
	m = press(t, m, "t")
	if m.Theme() != styles.ThemeDark {
		t.Errorf("Theme() = %q, want %q", m.Theme(), styles.ThemeDark)
	}
}

func TestReset(t *testing.T) {
	m := newTestModel(t)
	initial := m.calc.State()

	m = press(t, m, "b", "tab", "enter")
	m = typeText(t, m, "5")
	m = press(t, m, "enter", "r")

	if got := m.calc.State(); got != initial {
		t.Errorf("state after reset = %+v, want %+v", got, initial)
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		updated, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
		if view := updated.View(); view != "" {
			t.Errorf("%s: View() after quit = %q, want empty", k, view)
		}
	}
}

func TestTotalsReloaded(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(TotalsReloadedMsg{TotalA: 2933.3, TotalB: 300000000})
	m = updated.(Model)

	if !closeTo(m.calc.UserB(), 2*102273.89, 0.01) {
		t.Errorf("UserB = %v, want doubled for doubled total", m.calc.UserB())
	}
	if !strings.Contains(m.infoMsg, "300M") {
		t.Errorf("infoMsg = %q, want mention of 300M", m.infoMsg)
	}

	// Unchanged totals are ignored
	updated, _ = m.Update(TotalsReloadedMsg{TotalA: 2933.3, TotalB: 300000000})
	m = updated.(Model)
	if m.infoMsg == "" {
		t.Error("infoMsg should survive a no-op reload")
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	m = updated.(Model)

	if m.width != 200 || m.height != 50 {
		t.Errorf("size = %dx%d, want 200x50", m.width, m.height)
	}
	if got := m.contentWidth(); got != maxContentWidth {
		t.Errorf("contentWidth() = %d, want %d", got, maxContentWidth)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"veBoost Calculator", "veBTC", "veMEZO", "102,273.89", "5.00", "LOCKED", "SYSTEM TOTALS", "1×", "5×"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
	if strings.Contains(view, lockHint) {
		t.Error("lock hint should be hidden while a lock is active")
	}

	m = press(t, m, "m", "s")
	view = m.View()
	if !strings.Contains(view, lockHint) {
		t.Error("lock hint should show without a lock")
	}
	if !strings.Contains(view, "2,933.3") || !strings.Contains(view, "150,000,000") {
		t.Error("expanded totals panel should show both totals")
	}
}

func TestView_FullHelp(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")
	view := m.View()

	for _, want := range []string{"Navigation", "Locks", "Sliders", "Toggle theme"} {
		if !strings.Contains(view, want) {
			t.Errorf("full help missing %q", want)
		}
	}
}
