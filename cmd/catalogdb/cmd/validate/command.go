// Package validate provides the validate command implementation.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suwonmate/catalogdb/internal/cmd/application"
	"github.com/suwonmate/catalogdb/internal/cmd/emoji"
	"github.com/suwonmate/catalogdb/internal/schema"
	"github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/save"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var printSchema bool

	cmd := &cobra.Command{
		Use:     "validate <result.json>...",
		GroupID: "management",
		Short:   "Check built course databases against the result schema",
		Long: `Validate checks that each result database has exactly the four expected
top-level keys in a consistent mode, a well-formed version block, complete
course and contact entries, and the same departments in its subject and
contact maps.

This checks:
  - departments/estbLectDtaiList or their _quick pair, never a mix
  - legacy_app_ver is "0.0"
  - every course carries all whitelisted fields
  - every contact has email and mpno`,
		Example: `  catalogdb validate result_2024.1.json
  catalogdb validate --schema > result.schema.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if printSchema {
				_, err := out.Write(schema.Schema())
				return err
			}
			if len(args) == 0 {
				return errors.NewValidationError("args", nil, "at least one result file is required")
			}

			failed := 0
			for _, path := range args {
				if err := check(path); err != nil {
					app.Logger().Error().Err(err).Str("path", path).Msg("Validation failed")
					if errors.IsNotFound(err) {
						fmt.Fprintf(out, "%s %s (not found)\n", emoji.Error, path)
					} else {
						fmt.Fprintf(out, "%s %s\n", emoji.Error, path)
					}
					failed++
					continue
				}
				fmt.Fprintf(out, "%s %s\n", emoji.Success, path)
			}

			if failed > 0 {
				return &errors.ValidationError{
					Message: fmt.Sprintf("%d of %d databases failed validation", failed, len(args)),
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printSchema, "schema", false, "print the result schema and exit")

	return cmd
}

func check(path string) error {
	data, err := save.ReadFile(path)
	if err != nil {
		return err
	}
	return schema.Validate(path, data)
}
