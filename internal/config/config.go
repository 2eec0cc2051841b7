package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/veboost/internal/calculator"
)

// AppName names the config directory and environment prefix.
const AppName = "veboost"

// Config represents the complete veboost configuration
type Config struct {
	Calculator CalculatorConfig `mapstructure:"calculator" yaml:"calculator"`
	TUI        TUIConfig        `mapstructure:"tui" yaml:"tui"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// CalculatorConfig holds the starting values of a session
type CalculatorConfig struct {
	// TotalBTC is the system-wide veBTC supply (default: 2933.3)
	TotalBTC float64 `mapstructure:"total_btc" yaml:"total_btc"`
	// TotalMEZO is the system-wide veMEZO supply (default: 150000000)
	TotalMEZO float64 `mapstructure:"total_mezo" yaml:"total_mezo"`
	// UserBTC is the user's starting veBTC amount (default: 2)
	UserBTC float64 `mapstructure:"user_btc" yaml:"user_btc"`
	// UserMEZO is the user's starting veMEZO amount. It is recomputed at
	// startup when lock is "mezo".
	UserMEZO float64 `mapstructure:"user_mezo" yaml:"user_mezo"`
	// Boost is the starting target multiplier, 1 to 5 (default: 5)
	Boost float64 `mapstructure:"boost" yaml:"boost"`
	// Lock selects the derived amount: "none", "btc" or "mezo" (default: "mezo")
	Lock string `mapstructure:"lock" yaml:"lock"`
	// MaxBTC and MaxMEZO bound the system totals sliders
	MaxBTC  float64 `mapstructure:"max_btc" yaml:"max_btc"`
	MaxMEZO float64 `mapstructure:"max_mezo" yaml:"max_mezo"`
	// ClampDerived caps derived amounts at MaxBTC / MaxMEZO (default: false)
	ClampDerived bool `mapstructure:"clamp_derived" yaml:"clamp_derived"`
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	// Theme is "dark" or "light" (default: "dark")
	Theme string `mapstructure:"theme" yaml:"theme"`
	// ShowTotals opens the system totals panel at startup (default: false)
	ShowTotals bool `mapstructure:"show_totals" yaml:"show_totals"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled writes a JSON log to the config directory (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	seed := calculator.DefaultSeed()
	return &Config{
		Calculator: CalculatorConfig{
			TotalBTC:     seed.TotalA,
			TotalMEZO:    seed.TotalB,
			UserBTC:      seed.UserA,
			UserMEZO:     seed.UserB,
			Boost:        seed.Boost,
			Lock:         seed.Lock.String(),
			MaxBTC:       seed.MaxA,
			MaxMEZO:      seed.MaxB,
			ClampDerived: seed.ClampDerived,
		},
		TUI: TUIConfig{
			Theme:      "dark",
			ShowTotals: false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// Seed converts the calculator section into a calculator.Seed. Lock names
// are expected to have passed Validate; an unknown name yields LockNone.
func (c *CalculatorConfig) Seed() calculator.Seed {
	lock, err := calculator.ParseLockState(c.Lock)
	if err != nil {
		lock = calculator.LockNone
	}
	return calculator.Seed{
		UserA:        c.UserBTC,
		UserB:        c.UserMEZO,
		TotalA:       c.TotalBTC,
		TotalB:       c.TotalMEZO,
		Boost:        c.Boost,
		Lock:         lock,
		MaxA:         c.MaxBTC,
		MaxB:         c.MaxMEZO,
		ClampDerived: c.ClampDerived,
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Calculator defaults
	viper.SetDefault("calculator.total_btc", defaults.Calculator.TotalBTC)
	viper.SetDefault("calculator.total_mezo", defaults.Calculator.TotalMEZO)
	viper.SetDefault("calculator.user_btc", defaults.Calculator.UserBTC)
	viper.SetDefault("calculator.user_mezo", defaults.Calculator.UserMEZO)
	viper.SetDefault("calculator.boost", defaults.Calculator.Boost)
	viper.SetDefault("calculator.lock", defaults.Calculator.Lock)
	viper.SetDefault("calculator.max_btc", defaults.Calculator.MaxBTC)
	viper.SetDefault("calculator.max_mezo", defaults.Calculator.MaxMEZO)
	viper.SetDefault("calculator.clamp_derived", defaults.Calculator.ClampDerived)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_totals", defaults.TUI.ShowTotals)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	// Fall back to ~/.config/veboost
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
