// Package app provides the application context and dependency management
// for the catalogdb CLI. It centralizes configuration, logging and
// lifecycle so commands receive their dependencies instead of reading
// globals.
package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/suwonmate/catalogdb/internal/cmd/application"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

// App represents the catalogdb application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config    *Config
	logger    *zerolog.Logger
	logCloser io.Closer
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from .env files, the environment and an
// optional config file; options may replace it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	if err := app.configureLogger(); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Settings returns the build defaults from the configuration.
func (a *App) Settings() application.Settings {
	return application.Settings{
		AppVersion:       a.config.AppVersion,
		LegacyAppVersion: a.config.LegacyAppVersion,
		OutputDir:        a.config.OutputDir,
		Pretty:           a.config.Pretty,
		Compress:         a.config.Compress,
		Report:           a.config.Report,
	}
}

// Close releases the log output file, if one is open.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "config must not be nil", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
