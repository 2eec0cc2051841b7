// Package tui implements the interactive terminal calculator.
package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/veboost/internal/calculator"
)

// TotalsReloadedMsg carries system totals read from a changed config file.
type TotalsReloadedMsg struct {
	TotalA float64
	TotalB float64
}

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application around calc.
func New(calc *calculator.Calculator, opts Options, programOpts ...tea.ProgramOption) *App {
	model := NewModel(calc, opts)
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	return &App{
		model:   model,
		program: tea.NewProgram(model, programOpts...),
	}
}

// ReloadTotals forwards new system totals to the running program. It is safe
// to call from any goroutine; the calculator is only touched by the update
// loop.
func (a *App) ReloadTotals(totalA, totalB float64) {
	a.program.Send(TotalsReloadedMsg{TotalA: totalA, TotalB: totalB})
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// Quit cleanly when the terminal goes away
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigChan:
			a.program.Quit()
		case <-done:
		}
	}()

	a.model.logger.Info("tui started", "lock", a.model.calc.Lock().String())
	_, err := a.program.Run()
	a.model.logger.Info("tui stopped")
	return err
}
