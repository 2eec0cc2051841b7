package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/veboost/internal/calculator"
	"github.com/Iron-Ham/veboost/internal/numfmt"
	"github.com/Iron-Ham/veboost/internal/tui/keymap"
	"github.com/Iron-Ham/veboost/internal/util"
)

const (
	defaultContentWidth = 48
	minContentWidth     = 30
	maxContentWidth     = 64

	helpKeyColumn = 20

	manageLocksURL = "https://testnet.mezo.org/earn/lock"
)

// contentWidth is the usable width inside the card.
func (m Model) contentWidth() int {
	if m.width == 0 {
		return defaultContentWidth
	}
	// border + padding
	w := m.width - 8
	return max(minContentWidth, min(w, maxContentWidth))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.styles
	width := m.contentWidth()
	var b strings.Builder

	// Header
	theme := st.Muted.Render(fmt.Sprintf("[%s]", m.styles.Theme))
	title := st.Title.Render("veBoost Calculator")
	b.WriteString(util.JoinEdges(title, theme, width+4))
	b.WriteString("\n")
	b.WriteString(st.Subtitle.Render("Calculate your optimal veMEZO and veBTC locks"))
	b.WriteString("\n\n")

	// Card
	var card strings.Builder
	card.WriteString(m.renderAmountRow(fieldBTC, "veBTC", calculator.LockA, width))
	card.WriteString("\n")
	card.WriteString(m.renderAmountRow(fieldMEZO, "veMEZO", calculator.LockB, width))
	card.WriteString("\n")
	card.WriteString(m.renderDivider(width))
	card.WriteString("\n")
	card.WriteString(m.renderTotals(width))
	card.WriteString(m.renderDivider(width))
	card.WriteString("\n")
	card.WriteString(m.renderBoost(width))
	b.WriteString(st.Card.Width(width + 4).Render(card.String()))
	b.WriteString("\n")

	b.WriteString(st.Muted.Render("Manage my locks ↗ " + manageLocksURL))
	b.WriteString("\n")

	if m.mode == keymap.ModeCommand {
		b.WriteString("\n")
		b.WriteString(m.command.View())
	}

	// Error/Info messages
	msgWidth := max(width+4, m.width)
	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(util.TruncateANSI(st.ErrorMsg.Render("Error: "+m.errorMsg), msgWidth))
	}
	if m.infoMsg != "" {
		b.WriteString("\n")
		b.WriteString(util.TruncateANSI(st.SuccessMsg.Render(m.infoMsg), msgWidth))
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.renderFullHelp())
	} else {
		b.WriteString(m.renderHelp())
	}

	return b.String()
}

func (m Model) cursor(f field) string {
	if m.focus == f && m.mode != keymap.ModeCommand {
		return m.styles.Cursor.Render(">") + " "
	}
	return "  "
}

// renderAmountRow draws a user amount with its lock toggle and unit badge.
func (m Model) renderAmountRow(f field, label string, lock calculator.LockState, width int) string {
	st := m.styles
	locked := m.calc.Lock() == lock

	toggle := st.LockOff.Render("lock")
	if locked {
		toggle = st.LockOn.Render("LOCKED")
	}

	badge := st.Badge.Render(label)
	if locked {
		badge = st.BadgeReadOnly.Render(label)
	}

	fixed := 2 + lipgloss.Width(toggle) + 1 + lipgloss.Width(badge) + 1
	boxWidth := max(8, width-fixed)

	var value string
	switch {
	case m.mode == keymap.ModeEdit && m.editField == f:
		value = st.AmountFocused.Width(boxWidth).Render(m.editor.View())
	case locked:
		value = st.AmountReadOnly.Width(boxWidth).Align(lipgloss.Right).Render(numfmt.Format(m.value(f)))
	default:
		value = st.Amount.Width(boxWidth).Align(lipgloss.Right).Render(numfmt.Format(m.value(f)))
	}

	return m.cursor(f) + toggle + " " + value + " " + badge
}

func (m Model) renderDivider(width int) string {
	return m.styles.Divider.Render(strings.Repeat("─", width))
}

// renderTotals draws the collapsible system totals section.
func (m Model) renderTotals(width int) string {
	st := m.styles
	var b strings.Builder

	arrow := "▸"
	if m.showTotals {
		arrow = "▾"
	}
	b.WriteString(st.SectionTitle.Render("SYSTEM TOTALS " + arrow))
	b.WriteString("\n")
	if !m.showTotals {
		return b.String()
	}

	s := m.calc.State()
	b.WriteString("\n")
	b.WriteString(m.renderSystemRow(fieldTotalBTC, fieldMaxBTC, "veBTC", s.TotalA, s.MaxA, width))
	b.WriteString("\n")
	b.WriteString(m.renderSystemRow(fieldTotalMEZO, fieldMaxMEZO, "veMEZO", s.TotalB, s.MaxB, width))
	return b.String()
}

// renderSystemRow draws a total with its [0, max] slider and editable max.
func (m Model) renderSystemRow(total, limit field, label string, v, vmax float64, width int) string {
	st := m.styles

	valueText := numfmt.Format(v)
	if m.mode == keymap.ModeEdit && m.editField == total {
		valueText = m.editor.View()
	}
	maxText := numfmt.FormatCompact(vmax)
	if m.mode == keymap.ModeEdit && m.editField == limit {
		maxText = m.editor.View()
	}

	head := m.cursor(total) + st.Text.Bold(true).Render(label)
	line1 := util.JoinEdges(head, st.Text.Bold(true).Render(valueText), width)

	maxLabel := m.cursor(limit) + st.Muted.Render("max ") + st.Muted.Bold(true).Render(maxText)
	sliderWidth := max(4, width-2-lipgloss.Width(maxLabel)-1)
	line2 := "  " + renderSlider(st, v, 0, vmax, sliderWidth, false) + " " + maxLabel

	return line1 + "\n" + line2 + "\n"
}

// renderBoost draws the boost readout, slider, scale and hint.
func (m Model) renderBoost(width int) string {
	st := m.styles
	lock := m.calc.Lock()
	var b strings.Builder

	value := numfmt.FormatBoost(m.calc.Boost())
	if m.mode == keymap.ModeEdit && m.editField == fieldBoost {
		value = m.editor.View()
	}
	head := m.cursor(fieldBoost) + st.SectionTitle.Render("YOUR BOOST")
	readout := st.BoostValue.Render(value) + st.BoostUnit.Render("×")
	b.WriteString(util.JoinEdges(head, readout, width))
	b.WriteString("\n\n")

	b.WriteString(renderSlider(st, m.calc.Boost(), 1, 5, width, lock == calculator.LockNone))
	b.WriteString("\n")
	b.WriteString(st.ScaleMarker.Render(scaleMarkers(width)))

	if lock == calculator.LockNone {
		b.WriteString("\n\n")
		b.WriteString(util.Center(st.Hint.Render(lockHint), width))
	}
	return b.String()
}

func (m Model) renderHelp() string {
	helpStyle := m.styles.HelpBar
	keyStyle := m.styles.HelpKey

	switch m.mode {
	case keymap.ModeEdit:
		return helpStyle.Render(
			keyStyle.Render("enter") + " done  " +
				keyStyle.Render("esc") + " revert",
		)
	case keymap.ModeCommand:
		return helpStyle.Render(
			keyStyle.Render("enter") + " run  " +
				keyStyle.Render("esc") + " cancel",
		)
	}

	return helpStyle.Render(
		keyStyle.Render("j/k") + " move  " +
			keyStyle.Render("enter") + " edit  " +
			keyStyle.Render("space") + " lock  " +
			keyStyle.Render("h/l") + " adjust  " +
			keyStyle.Render("s") + " totals  " +
			keyStyle.Render("t") + " theme  " +
			keyStyle.Render("?") + " help  " +
			keyStyle.Render("q") + " quit",
	)
}

// renderFullHelp lists every normal mode binding by category.
func (m Model) renderFullHelp() string {
	keyStyle := m.styles.HelpKey
	byCategory := m.keys.GetBindingsByCategory(keymap.ModeNormal)

	var b strings.Builder
	for _, cat := range m.keys.GetCategories(keymap.ModeNormal) {
		b.WriteString(m.styles.SectionTitle.Render(cat))
		b.WriteString("\n")

		// One line per command, listing all of its keys
		seen := make(map[keymap.Command]bool)
		for _, kb := range byCategory[cat] {
			if seen[kb.Command] {
				continue
			}
			seen[kb.Command] = true

			var keys []string
			for _, alt := range m.keys.GetBindingsForCommand(kb.Command, keymap.ModeNormal) {
				name := alt.String()
				if name == " " {
					name = "space"
				}
				if !slices.Contains(keys, name) {
					keys = append(keys, name)
				}
			}
			joined := strings.Join(keys, "/")
			pad := strings.Repeat(" ", max(1, helpKeyColumn-len(joined)))
			b.WriteString("  " + keyStyle.Render(joined) + pad + kb.Description + "\n")
		}
	}
	return m.styles.HelpBar.Render(strings.TrimRight(b.String(), "\n"))
}
