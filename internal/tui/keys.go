package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/veboost/internal/boost"
	"github.com/Iron-Ham/veboost/internal/calculator"
	"github.com/Iron-Ham/veboost/internal/numfmt"
	"github.com/Iron-Ham/veboost/internal/tui/keymap"
	"github.com/Iron-Ham/veboost/internal/tui/styles"
)

const (
	boostStep = 0.01
	// totals sliders move max/1000 per step
	totalsSteps = 1000
	fastFactor  = 10
)

const lockHint = "Lock one input to adjust boost target"

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keys.GetBinding(msg, keymap.ModeNormal)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdFocusNext:
		m.moveFocus(1)
	case keymap.CmdFocusPrev:
		m.moveFocus(-1)
	case keymap.CmdEdit:
		return m.startEdit()

	case keymap.CmdToggleLock:
		m.toggleFocusedLock()
	case keymap.CmdLockBTC:
		m.toggleLock(calculator.LockA)
	case keymap.CmdLockMEZO:
		m.toggleLock(calculator.LockB)

	case keymap.CmdIncrease:
		m.nudge(1)
	case keymap.CmdDecrease:
		m.nudge(-1)
	case keymap.CmdIncreaseFast:
		m.nudge(fastFactor)
	case keymap.CmdDecreaseFast:
		m.nudge(-fastFactor)

	case keymap.CmdToggleTotals:
		m.showTotals = !m.showTotals
		if !m.showTotals && m.focus.system() {
			m.focus = fieldBTC
		}
	case keymap.CmdToggleTheme:
		m.setTheme(m.styles.Theme.Toggle())
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp

	case keymap.CmdEnterCommandMode:
		m.mode = keymap.ModeCommand
		m.command.SetValue("")
		return m, m.command.Focus()

	case keymap.CmdReset:
		m.calc.Reset()
		m.infoMsg = "Reset to starting values"
	}

	return m, nil
}

// toggleFocusedLock toggles the lock belonging to the focused row. On the
// boost row it releases whichever lock is active.
func (m *Model) toggleFocusedLock() {
	switch m.focus {
	case fieldBTC:
		m.toggleLock(calculator.LockA)
	case fieldMEZO:
		m.toggleLock(calculator.LockB)
	case fieldBoost:
		if m.calc.Lock() == calculator.LockNone {
			m.infoMsg = lockHint
			return
		}
		m.toggleLock(m.calc.Lock())
	}
}

func (m *Model) toggleLock(target calculator.LockState) {
	previous := m.calc.Lock()
	m.calc.ToggleLock(target)

	if m.calc.Lock() == calculator.LockNone {
		if previous != calculator.LockNone {
			m.infoMsg = fmt.Sprintf("Unlocked, boost is %s×", numfmt.FormatBoost(m.calc.Boost()))
		}
		return
	}
	m.infoMsg = fmt.Sprintf("%s locked to the boost target", m.calc.Lock().Derived())
}

// nudge moves the focused slider by steps increments.
func (m *Model) nudge(steps float64) {
	s := m.calc.State()

	switch m.focus {
	case fieldBoost:
		if s.Lock == calculator.LockNone {
			m.infoMsg = lockHint
			return
		}
		next := math.Round((s.Boost+steps*boostStep)*100) / 100
		m.calc.EditBoost(boost.ClampBoost(next))

	case fieldTotalBTC:
		m.calc.EditTotals(slide(s.TotalA, s.MaxA, steps), s.TotalB)
	case fieldTotalMEZO:
		m.calc.EditTotals(s.TotalA, slide(s.TotalB, s.MaxB, steps))
	}
}

// slide moves v along a [0, limit] slider with limit/1000 steps.
func slide(v, limit, steps float64) float64 {
	if limit <= 0 {
		return v
	}
	next := v + steps*limit/totalsSteps
	return math.Min(math.Max(next, 0), limit)
}

func (m *Model) setTheme(name styles.ThemeName) {
	m.styles = styles.NewThemedStyles(name)
	m.logger.Debug("theme changed", "theme", string(m.styles.Theme))
}

// startEdit opens the editor on the focused field.
func (m Model) startEdit() (tea.Model, tea.Cmd) {
	f := m.focus
	if m.derived(f) {
		if f == fieldBoost {
			m.infoMsg = lockHint
		} else {
			m.errorMsg = fmt.Sprintf("%s is calculated while locked (space to unlock)", f)
		}
		return m, nil
	}

	v := m.value(f)
	var text string
	switch {
	case f == fieldBoost:
		text = numfmt.FormatBoost(v)
	case f.live():
		text, _ = numfmt.Sanitize(numfmt.Format(v))
	default:
		text = numfmt.Format(v)
	}

	m.mode = keymap.ModeEdit
	m.editField = f
	m.editBefore = v
	m.editor.SetValue(text)
	m.editor.CursorEnd()
	return m, tea.Batch(m.editor.Focus(), textinput.Blink)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.GetBinding(msg, keymap.ModeEdit); ok {
		switch cmd {
		case keymap.CmdQuit:
			m.quitting = true
			return m, tea.Quit
		case keymap.CmdConfirm:
			m.commitEdit()
		case keymap.CmdCancel:
			m.apply(m.editField, m.editBefore)
		}
		m.endEdit()
		return m, nil
	}

	previous := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)

	if m.editField.live() {
		clean, ok := numfmt.Sanitize(m.editor.Value())
		if !ok {
			m.editor.SetValue(previous)
			return m, cmd
		}
		if clean != m.editor.Value() {
			m.editor.SetValue(clean)
		}
		m.apply(m.editField, numfmt.Parse(clean))
	}
	return m, cmd
}

// commitEdit applies the editor text to the field being edited.
func (m *Model) commitEdit() {
	text := m.editor.Value()
	switch {
	case m.editField.live():
		m.apply(m.editField, numfmt.Parse(text))
	case m.editField == fieldBoost:
		m.apply(m.editField, numfmt.Parse(text))
	default:
		m.apply(m.editField, numfmt.ParseCompact(text))
	}
}

func (m *Model) endEdit() {
	m.mode = keymap.ModeNormal
	m.editor.Blur()
	m.editor.SetValue("")
}

// apply routes a value for f to the calculator. It reports whether the
// calculator accepted it.
func (m *Model) apply(f field, v float64) bool {
	s := m.calc.State()
	switch f {
	case fieldBTC:
		return m.calc.EditA(v)
	case fieldMEZO:
		return m.calc.EditB(v)
	case fieldBoost:
		return m.calc.EditBoost(v)
	case fieldTotalBTC:
		m.calc.EditTotals(v, s.TotalB)
	case fieldTotalMEZO:
		m.calc.EditTotals(s.TotalA, v)
	case fieldMaxBTC:
		m.calc.SetMaxA(v)
	case fieldMaxMEZO:
		m.calc.SetMaxB(v)
	}
	return true
}

func (m *Model) applyReloadedTotals(msg TotalsReloadedMsg) {
	s := m.calc.State()
	if s.TotalA == msg.TotalA && s.TotalB == msg.TotalB {
		return
	}
	m.calc.EditTotals(msg.TotalA, msg.TotalB)
	m.infoMsg = fmt.Sprintf("System totals reloaded: %s veBTC, %s veMEZO",
		numfmt.FormatCompact(msg.TotalA), numfmt.FormatCompact(msg.TotalB))
	m.logger.Info("system totals reloaded", "total_a", msg.TotalA, "total_b", msg.TotalB)
}
