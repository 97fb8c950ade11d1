package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/suwonmate/catalogdb/cmd/catalogdb/cmd/build"
	"github.com/suwonmate/catalogdb/cmd/catalogdb/cmd/inspect"
	"github.com/suwonmate/catalogdb/cmd/catalogdb/cmd/validate"
)

// Execute runs the catalogdb CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	var (
		verbose, quiet, noColor bool
		format, logLevel        string
	)

	rootCmd := &cobra.Command{
		Use:     "catalogdb",
		Short:   "Course catalog database builder",
		Version: a.version,
		Long: `catalogdb builds the consolidated course database used by the campus app.

It merges the open-class listing with the class syllabus listing, groups
courses by department and major, collects instructor contacts and writes a
versioned JSON database.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)
			return a.configureLogger()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	rootCmd.AddGroup(&cobra.Group{ID: "management", Title: "Management Commands:"})

	// build flag defaults come from the config, so the config file is chosen
	// with CATALOGDB_CONFIG rather than a flag
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.StringVar(&format, "format", "", "output format: table, json, yaml")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("catalogdb {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(build.NewCommand(a))

	rootCmd.AddCommand(inspect.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))

	rootCmd.AddCommand(a.newVersionCommand())
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalogdb version %s\n", a.version)
			fmt.Fprintf(out, "commit: %s\n", a.commit)
			fmt.Fprintf(out, "built: %s\n", a.date)
			fmt.Fprintf(out, "built by: %s\n", a.builtBy)
			fmt.Fprintf(out, "go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// ExitOnError prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
