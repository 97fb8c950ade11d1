// Package main provides the entry point for the catalogdb CLI tool.
package main

import (
	"context"
	"os"

	"github.com/suwonmate/catalogdb/cmd/catalogdb/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	err = application.Execute(ctx, os.Args[1:])
	_ = application.Close()
	if err != nil {
		cancel()
		app.ExitOnError(err)
	}
}
