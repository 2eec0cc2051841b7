package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/veboost/internal/calculator"
	"github.com/Iron-Ham/veboost/internal/numfmt"
	"github.com/Iron-Ham/veboost/internal/tui/keymap"
	"github.com/Iron-Ham/veboost/internal/tui/styles"
)

var errQuit = errors.New("quit")

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.keys.GetBinding(msg, keymap.ModeCommand); ok {
		line := m.command.Value()
		m.mode = keymap.ModeNormal
		m.command.Blur()
		m.command.SetValue("")

		switch cmd {
		case keymap.CmdQuit:
			m.quitting = true
			return m, tea.Quit
		case keymap.CmdConfirm:
			err := m.execute(line)
			if errors.Is(err, errQuit) {
				m.quitting = true
				return m, tea.Quit
			}
			if err != nil {
				m.errorMsg = err.Error()
				m.logger.Debug("command failed", "command", line, "error", err)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return m, cmd
}

// execute runs one ex command line such as "btc 21" or "lock mezo".
func (m *Model) execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	name, args := strings.ToLower(parts[0]), parts[1:]

	cmd, ok := keymap.LookupExCommand(name)
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}

	switch cmd {
	case keymap.CmdExQuit:
		return errQuit

	case keymap.CmdExReset:
		m.calc.Reset()
		m.infoMsg = "Reset to starting values"
		return nil

	case keymap.CmdExTheme:
		if len(args) == 0 {
			m.setTheme(m.styles.Theme.Toggle())
			return nil
		}
		if !styles.IsValidTheme(args[0]) {
			return fmt.Errorf("unknown theme %q (want one of %s)", args[0], strings.Join(styles.BuiltinThemes(), ", "))
		}
		m.setTheme(styles.ThemeName(args[0]))
		return nil

	case keymap.CmdExLock:
		if len(args) != 1 {
			return fmt.Errorf("usage: lock btc|mezo|none")
		}
		target, err := calculator.ParseLockState(args[0])
		if err != nil {
			return err
		}
		if target != m.calc.Lock() {
			m.toggleLock(target)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("usage: %s <amount>", name)
	}
	v := numfmt.ParseCompact(args[0])

	var f field
	switch cmd {
	case keymap.CmdExBTC:
		f = fieldBTC
	case keymap.CmdExMEZO:
		f = fieldMEZO
	case keymap.CmdExBoost:
		f = fieldBoost
	case keymap.CmdExTotalBTC:
		f = fieldTotalBTC
	case keymap.CmdExTotalMEZO:
		f = fieldTotalMEZO
	default:
		return fmt.Errorf("unhandled command: %s", name)
	}

	if !m.apply(f, v) {
		if f == fieldBoost {
			return errors.New(lockHint)
		}
		return fmt.Errorf("%s is calculated while locked", f)
	}
	return nil
}
