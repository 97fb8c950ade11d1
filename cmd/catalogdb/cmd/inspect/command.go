// Package inspect provides the inspect command implementation.
package inspect

import (
	"github.com/spf13/cobra"

	"github.com/suwonmate/catalogdb/internal/cmd/application"
	"github.com/suwonmate/catalogdb/internal/cmd/output"
	"github.com/suwonmate/catalogdb/internal/report"
	"github.com/suwonmate/catalogdb/pkg/catalog"
	"github.com/suwonmate/catalogdb/pkg/save"
)

// NewCommand creates the inspect command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <result.json>",
		GroupID: "management",
		Short:   "Summarize a built course database",
		Args:    cobra.ExactArgs(1),
		Long: `Inspect reads a result database and prints its mode, version block and
per-department subject, major and contact counts.

Brotli-compressed databases (.br) are decompressed transparently.`,
		Example: `  catalogdb inspect result_2024.1.json
  catalogdb inspect result_2024.1.json.br --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			doc, err := Load(args[0])
			if err != nil {
				return err
			}

			app.Logger().Debug().Str("path", args[0]).Bool("quick", doc.Quick).Msg("Loaded course database")

			if format == "" {
				format = output.DetectFormat("")
			}
			return output.FormatSummary(cmd.OutOrStdout(), report.Summarize(doc), format)
		},
	}
}

// Load reads and decodes a result database, decompressing .br files.
func Load(path string) (*catalog.Document, error) {
	data, err := save.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.ParseDocument(path, data)
}
