package app

import (
	"fmt"
	"os"

	"github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

// configureLogger installs the logger described by the configuration as
// the process default and releases the log file held by the previous one.
// Log level precedence (highest to lowest):
//  1. --log-level flag or CATALOGDB_LOG_LEVEL
//  2. -q/--quiet flag (shortcut for warn)
//  3. -v/--verbose flag (shortcut for debug)
//  4. Default (info)
func (a *App) configureLogger() error {
	closer, err := logging.Configure(logConfig(a.config))
	if err != nil {
		return errors.NewConfigError("logging", "cannot open log output", err)
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	a.logCloser = closer
	a.logger = logging.Default()
	return nil
}

func logConfig(config *Config) *logging.Config {
	level := determineLogLevel(config)
	return &logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	}
}

func determineLogLevel(config *Config) string {
	if config.LogLevel != "" {
		validated := validateLogLevel(config.LogLevel)
		if validated != config.LogLevel {
			fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using %q\n", config.LogLevel, validated)
		}
		return validated
	}

	if config.Verbose && config.Quiet {
		fmt.Fprintf(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	}
	if config.Quiet {
		return "warn"
	}
	if config.Verbose {
		return "debug"
	}

	return "info"
}

// validateLogLevel returns level if it is supported, otherwise "info".
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	default:
		return "info"
	}
}
