package build

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suwonmate/catalogdb/internal/cmd/application"
	"github.com/suwonmate/catalogdb/internal/cmd/emoji"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

// NewCommand creates the build command using app context.
func NewCommand(app application.Application) *cobra.Command {
	s := app.Settings()
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "core",
		Short:   "Merge the two course exports into a result database",
		Args:    cobra.NoArgs,
		Long: `Build merges the open-class listing and the class syllabus listing into
the consolidated course database consumed by the app.

Courses are matched on subject code and section number. Department and major
come from the syllabus; every other field comes from the open-class record.
Courses whose department cannot be resolved are dropped with a warning.

When both inputs are byte-identical the database is written in quick mode,
with "_quick" suffixed department and subject keys.

The result is written to result_<db-version>.json in the output directory.`,
		Example: `  catalogdb build -o open_class.json -c class_todo.json -d 2024.1
  catalogdb build -o open.json -c todo.json -d 2024.1 -a 1.2 --compress
  catalogdb build -o open.json -c todo.json -d 2024.1 --report courses.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())

			outcome, err := Run(ctx, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range outcome.Paths {
				fmt.Fprintln(out, path)
			}
			if outcome.Report != "" {
				fmt.Fprintln(out, outcome.Report)
			}
			if outcome.Warnings > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %d courses dropped\n",
					emoji.Warning, outcome.Warnings)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.OpenClassPath, "open-class", "o", "", "open-class listing JSON file")
	flags.StringVarP(&opts.ClassTodoPath, "class-todo", "c", "", "class syllabus listing JSON file")
	flags.StringVarP(&opts.DBVersion, "db-version", "d", "", "database version, used in the output file name")
	flags.StringVarP(&opts.AppVersion, "app-version", "a", s.AppVersion, "latest app version")
	flags.StringVarP(&opts.LegacyAppVersion, "legacy-app-version", "l", s.LegacyAppVersion, "legacy app version (accepted for compatibility, not written)")
	flags.StringVar(&opts.OutputDir, "output-dir", s.OutputDir, "directory for the result database")
	flags.BoolVar(&opts.Pretty, "pretty", s.Pretty, "indent the result JSON")
	flags.BoolVar(&opts.Compress, "compress", s.Compress, "also write a brotli-compressed copy")
	flags.StringVar(&opts.Report, "report", s.Report, "write a CSV report of merged courses to this file")

	_ = cmd.MarkFlagRequired("open-class")
	_ = cmd.MarkFlagRequired("class-todo")
	_ = cmd.MarkFlagRequired("db-version")

	return cmd
}
