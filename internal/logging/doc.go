// Package logging provides structured logging for veboost.
//
// It wraps log/slog with a JSON handler. Because the terminal belongs to the
// interactive calculator, logs normally go to a file in the config
// directory rather than stderr:
//
//	logger, err := logging.NewLogger(config.ConfigDir(), "info")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	calcLog := logger.WithComponent("calculator")
//	calcLog.Debug("boost recomputed", "boost", 3.2)
//
// Use [NopLogger] in tests or when logging is disabled.
package logging
