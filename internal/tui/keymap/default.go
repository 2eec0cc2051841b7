package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default calculator key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default veboost key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal:  defaultNormalBindings(),
			ModeEdit:    defaultEditBindings(),
			ModeCommand: defaultCommandBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Field navigation
			{KeyType: tea.KeyTab, Command: CmdFocusNext, Description: "Next field", Category: "Navigation"},
			{KeyType: tea.KeyDown, Command: CmdFocusNext, Description: "Next field", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdFocusNext, Description: "Next field", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdFocusPrev, Description: "Previous field", Category: "Navigation"},
			{KeyType: tea.KeyUp, Command: CmdFocusPrev, Description: "Previous field", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdFocusPrev, Description: "Previous field", Category: "Navigation"},
			{KeyType: tea.KeyEnter, Command: CmdEdit, Description: "Edit field", Category: "Navigation"},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdEdit, Description: "Edit field", Category: "Navigation"},

			// Locks
			{KeyType: tea.KeySpace, Command: CmdToggleLock, Description: "Toggle lock", Category: "Locks"},
			{KeyType: tea.KeyRunes, Rune: ' ', Command: CmdToggleLock, Description: "Toggle lock", Category: "Locks"},
			{KeyType: tea.KeyRunes, Rune: 'b', Command: CmdLockBTC, Description: "Lock veBTC", Category: "Locks"},
			{KeyType: tea.KeyRunes, Rune: 'm', Command: CmdLockMEZO, Description: "Lock veMEZO", Category: "Locks"},

			// Sliders
			{KeyType: tea.KeyRight, Command: CmdIncrease, Description: "Increase", Category: "Sliders"},
			{KeyType: tea.KeyRunes, Rune: 'l', Command: CmdIncrease, Description: "Increase", Category: "Sliders"},
			{KeyType: tea.KeyLeft, Command: CmdDecrease, Description: "Decrease", Category: "Sliders"},
			{KeyType: tea.KeyRunes, Rune: 'h', Command: CmdDecrease, Description: "Decrease", Category: "Sliders"},
			{KeyType: tea.KeyShiftRight, Command: CmdIncreaseFast, Description: "Increase x10", Category: "Sliders"},
			{KeyType: tea.KeyRunes, Rune: 'L', Command: CmdIncreaseFast, Description: "Increase x10", Category: "Sliders"},
			{KeyType: tea.KeyShiftLeft, Command: CmdDecreaseFast, Description: "Decrease x10", Category: "Sliders"},
			{KeyType: tea.KeyRunes, Rune: 'H', Command: CmdDecreaseFast, Description: "Decrease x10", Category: "Sliders"},

			// View
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdToggleTotals, Description: "System totals", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: 't', Command: CmdToggleTheme, Description: "Toggle theme", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "View"},

			// Application
			{KeyType: tea.KeyRunes, Rune: ':', Command: CmdEnterCommandMode, Description: "Command", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdReset, Description: "Reset", Category: "Application"},
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultEditBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeEdit,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Done", Category: "Edit"},
			{KeyType: tea.KeyTab, Command: CmdConfirm, Description: "Done", Category: "Edit"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Revert", Category: "Edit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultCommandBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeCommand,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Run command", Category: "Command"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Command"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

// ExCommands maps ex command strings to their Command values.
var ExCommands = map[string]Command{
	"btc":        CmdExBTC,
	"vebtc":      CmdExBTC,
	"mezo":       CmdExMEZO,
	"vemezo":     CmdExMEZO,
	"boost":      CmdExBoost,
	"total-btc":  CmdExTotalBTC,
	"tb":         CmdExTotalBTC,
	"total-mezo": CmdExTotalMEZO,
	"tm":         CmdExTotalMEZO,
	"lock":       CmdExLock,
	"theme":      CmdExTheme,
	"reset":      CmdExReset,
	"q":          CmdExQuit,
	"quit":       CmdExQuit,
}

// LookupExCommand looks up an ex command by its string representation.
func LookupExCommand(cmd string) (Command, bool) {
	c, ok := ExCommands[cmd]
	return c, ok
}
