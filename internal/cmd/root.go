package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Iron-Ham/veboost/internal/calculator"
	"github.com/Iron-Ham/veboost/internal/config"
	"github.com/Iron-Ham/veboost/internal/event"
	"github.com/Iron-Ham/veboost/internal/logging"
	"github.com/Iron-Ham/veboost/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "veboost",
	Short: "Interactive veBTC / veMEZO boost calculator",
	Long: `veboost explores how veBTC and veMEZO lock sizes combine into a
boost multiplier between 1x and 5x.

Lock one amount and it is recomputed from the boost target and the other
amount. With no lock the boost is computed from both amounts. System totals
are read from the config file and picked up live when the file changes.`,
	SilenceUsage: true,
	RunE:         runCalculator,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/veboost/config.yaml)")
	rootCmd.PersistentFlags().String("lock", "", "starting lock: none, btc or mezo")
	rootCmd.PersistentFlags().String("theme", "", "color theme: dark or light")
}

// bindFlags maps persistent flags onto their config keys. It runs on every
// initialization so bindings survive viper.Reset.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("calculator.lock", flags.Lookup("lock"))
	_ = viper.BindPFlag("tui.theme", flags.Lookup("theme"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()
	bindFlags(rootCmd)

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("VEBOOST")
	// Replace dots with underscores for nested keys in env vars
	// e.g., VEBOOST_CALCULATOR_TOTAL_MEZO for calculator.total_mezo
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runCalculator(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("veboost needs an interactive terminal (try 'veboost config show')")
	}

	logger := createLogger(cfg)
	defer func() { _ = logger.Close() }()

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		logger.Debug("terminal size", "width", width, "height", height)
	}

	calc := newCalculator(cfg, logger)
	app := tui.New(calc, tui.Options{
		Theme:      cfg.TUI.Theme,
		ShowTotals: cfg.TUI.ShowTotals,
		Logger:     logger,
	})

	watchTotals(app, logger)

	if err := app.Run(); err != nil {
		return fmt.Errorf("calculator exited: %w", err)
	}
	return nil
}

// newCalculator builds the event bus and calculator for cfg.
func newCalculator(cfg *config.Config, logger *logging.Logger) *calculator.Calculator {
	bus := event.NewBus(logger)
	calc := calculator.New(cfg.Calculator.Seed(),
		calculator.WithBus(bus),
		calculator.WithLogger(logger),
	)

	bus.Subscribe(event.TypeLockChanged, func(e event.Event) {
		if lc, ok := e.(event.LockChangedEvent); ok {
			logger.Info("lock changed", "from", lc.Previous, "to", lc.Current, "snapped", lc.Snapped)
		}
	})
	return calc
}

// watchTotals forwards system totals from a changed config file to app.
// It does nothing when no config file is in use.
func watchTotals(app *tui.App, logger *logging.Logger) {
	if viper.ConfigFileUsed() == "" {
		return
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("ignoring invalid config change", "file", e.Name, "error", err)
			return
		}
		app.ReloadTotals(cfg.Calculator.TotalBTC, cfg.Calculator.TotalMEZO)
	})
	viper.WatchConfig()
	logger.Debug("watching config file", "file", viper.ConfigFileUsed())
}

// createLogger returns the configured logger, or a no-op logger when logging
// is disabled. Log creation failure never prevents startup.
func createLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}

	logger, err := logging.NewLogger(config.ConfigDir(), cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to create logger: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}
