package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Iron-Ham/veboost/internal/boost"
	"github.com/Iron-Ham/veboost/internal/calculator"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "calculator.total_btc")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of valid TUI themes
func ValidThemes() []string {
	return []string{"dark", "light"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCalculator()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func nonNegative(field string, v float64) []ValidationError {
	if math.IsNaN(v) || v < 0 {
		return []ValidationError{{
			Field:   field,
			Value:   v,
			Message: "must be non-negative",
		}}
	}
	return nil
}

// validateCalculator validates the CalculatorConfig
func (c *Config) validateCalculator() []ValidationError {
	var errors []ValidationError
	calc := c.Calculator

	errors = append(errors, nonNegative("calculator.total_btc", calc.TotalBTC)...)
	errors = append(errors, nonNegative("calculator.total_mezo", calc.TotalMEZO)...)
	errors = append(errors, nonNegative("calculator.user_btc", calc.UserBTC)...)
	errors = append(errors, nonNegative("calculator.user_mezo", calc.UserMEZO)...)
	errors = append(errors, nonNegative("calculator.max_btc", calc.MaxBTC)...)
	errors = append(errors, nonNegative("calculator.max_mezo", calc.MaxMEZO)...)

	if !(calc.Boost >= boost.MinBoost && calc.Boost <= boost.MaxBoost) {
		errors = append(errors, ValidationError{
			Field:   "calculator.boost",
			Value:   calc.Boost,
			Message: fmt.Sprintf("must be between %g and %g", boost.MinBoost, boost.MaxBoost),
		})
	}

	if _, err := calculator.ParseLockState(calc.Lock); err != nil {
		errors = append(errors, ValidationError{
			Field:   "calculator.lock",
			Value:   calc.Lock,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(calculator.ValidLockStates(), ", ")),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
