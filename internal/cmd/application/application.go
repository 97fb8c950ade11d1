// Package application defines what commands need from the running app.
// The App in cmd/catalogdb/app implements Application; tests use Mock.
package application

import "github.com/rs/zerolog"

// Settings are the build defaults resolved from config files, environment
// and persistent flags. Command flags override them per invocation.
type Settings struct {
	AppVersion       string
	LegacyAppVersion string
	OutputDir        string
	Pretty           bool
	Compress         bool
	Report           string
}

// Application is the dependency surface handed to every command.
type Application interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Settings returns the resolved build defaults.
	Settings() Settings

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
