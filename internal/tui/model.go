package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/veboost/internal/calculator"
	"github.com/Iron-Ham/veboost/internal/logging"
	"github.com/Iron-Ham/veboost/internal/tui/keymap"
	"github.com/Iron-Ham/veboost/internal/tui/styles"
)

// field identifies a focusable control.
type field int

const (
	fieldBTC field = iota
	fieldMEZO
	fieldTotalBTC
	fieldMaxBTC
	fieldTotalMEZO
	fieldMaxMEZO
	fieldBoost
)

func (f field) String() string {
	switch f {
	case fieldBTC:
		return "veBTC"
	case fieldMEZO:
		return "veMEZO"
	case fieldTotalBTC:
		return "total veBTC"
	case fieldMaxBTC:
		return "veBTC range"
	case fieldTotalMEZO:
		return "total veMEZO"
	case fieldMaxMEZO:
		return "veMEZO range"
	case fieldBoost:
		return "boost"
	default:
		return "unknown"
	}
}

// live fields apply every keystroke while editing.
func (f field) live() bool {
	return f == fieldBTC || f == fieldMEZO
}

func (f field) system() bool {
	return f >= fieldTotalBTC && f <= fieldMaxMEZO
}

// Options configures a Model.
type Options struct {
	Theme      string
	ShowTotals bool
	Logger     *logging.Logger
}

// Model is the Bubbletea model for the calculator.
type Model struct {
	calc   *calculator.Calculator
	keys   *keymap.Keymap
	styles *styles.ThemedStyles
	logger *logging.Logger

	mode       keymap.Mode
	focus      field
	showTotals bool
	showHelp   bool

	// editor is shared by every amount; only one is edited at a time.
	editor     textinput.Model
	editField  field
	editBefore float64

	command textinput.Model

	width    int
	height   int
	errorMsg string
	infoMsg  string
	quitting bool
}

// NewModel creates a model driving calc.
func NewModel(calc *calculator.Calculator, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	editor := textinput.New()
	editor.Prompt = ""
	editor.Placeholder = "0"
	editor.CharLimit = 32
	editor.Width = 24

	command := textinput.New()
	command.Prompt = ":"
	command.CharLimit = 64
	command.Width = 40

	return Model{
		calc:       calc,
		keys:       keymap.DefaultKeymap(),
		styles:     styles.NewThemedStyles(styles.ThemeName(opts.Theme)),
		logger:     logger.WithComponent("tui"),
		mode:       keymap.ModeNormal,
		focus:      fieldBTC,
		showTotals: opts.ShowTotals,
		editor:     editor,
		command:    command,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TotalsReloadedMsg:
		m.applyReloadedTotals(msg)
		return m, nil

	case tea.KeyMsg:
		// Clear messages on any key
		m.errorMsg = ""
		m.infoMsg = ""

		switch m.mode {
		case keymap.ModeEdit:
			return m.handleEditKey(msg)
		case keymap.ModeCommand:
			return m.handleCommandKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}

	return m, nil
}

// Theme returns the active theme.
func (m Model) Theme() styles.ThemeName {
	return m.styles.Theme
}

// fields returns the focus order for the current layout.
func (m Model) fields() []field {
	if m.showTotals {
		return []field{fieldBTC, fieldMEZO, fieldTotalBTC, fieldMaxBTC, fieldTotalMEZO, fieldMaxMEZO, fieldBoost}
	}
	return []field{fieldBTC, fieldMEZO, fieldBoost}
}

func (m *Model) moveFocus(delta int) {
	order := m.fields()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	m.focus = order[idx]
}

// value returns the current number behind f.
func (m Model) value(f field) float64 {
	s := m.calc.State()
	switch f {
	case fieldBTC:
		return s.UserA
	case fieldMEZO:
		return s.UserB
	case fieldTotalBTC:
		return s.TotalA
	case fieldMaxBTC:
		return s.MaxA
	case fieldTotalMEZO:
		return s.TotalB
	case fieldMaxMEZO:
		return s.MaxB
	case fieldBoost:
		return s.Boost
	}
	return 0
}

// derived reports whether f is currently computed rather than entered.
func (m Model) derived(f field) bool {
	s := m.calc.State()
	switch f {
	case fieldBTC:
		return !s.Editable(calculator.FieldA)
	case fieldMEZO:
		return !s.Editable(calculator.FieldB)
	case fieldBoost:
		return !s.Editable(calculator.FieldBoost)
	}
	return false
}
