package build

import (
	"context"
	"os"

	"github.com/suwonmate/catalogdb/internal/loader"
	"github.com/suwonmate/catalogdb/internal/report"
	"github.com/suwonmate/catalogdb/pkg/catalog"
	"github.com/suwonmate/catalogdb/pkg/constants"
	"github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
	"github.com/suwonmate/catalogdb/pkg/save"
)

// Outcome describes what a build wrote.
type Outcome struct {
	Paths    []string
	Report   string
	Quick    bool
	Stats    catalog.Stats
	Warnings int
}

// Run loads both exports, merges them and writes the database.
func Run(ctx context.Context, opts *Options) (*Outcome, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx = logging.WithRunID(ctx)
	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("app_version", opts.AppVersion).
		Str("db_version", opts.DBVersion).
		Str("legacy_app_version", opts.LegacyAppVersion).
		Msg("Starting build")

	in, err := loader.Load(ctx, opts.OpenClassPath, opts.ClassTodoPath)
	if err != nil {
		return nil, err
	}
	if in.Same() {
		logger.Info().Str("path", in.OpenClassPath).Msg("Both inputs name the same file")
	}

	result, err := catalog.Build(ctx, in.OpenClass, in.ClassTodo, opts.AppVersion, opts.DBVersion,
		catalog.WithPretty(opts.Pretty),
		catalog.WithSourceNames(opts.OpenClassPath, opts.ClassTodoPath),
	)
	if err != nil {
		return nil, err
	}

	data, err := result.Bytes()
	if err != nil {
		return nil, errors.WrapResource("encode", "database", opts.DBVersion, err)
	}

	saveOpts := []save.Option{save.WithPath(save.ResultPath(opts.OutputDir, opts.DBVersion))}
	if opts.Compress {
		saveOpts = append(saveOpts, save.WithCompression(save.CompressionBrotli))
	}
	paths, err := save.Save(data, saveOpts...)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Paths:    paths,
		Quick:    result.Document.Quick,
		Stats:    result.Stats,
		Warnings: len(result.Warnings),
	}

	if opts.Report != "" {
		if err := writeReport(opts.Report, result.Document); err != nil {
			return nil, err
		}
		outcome.Report = opts.Report
	}

	logger.Info().
		Strs("paths", paths).
		Bool("quick", outcome.Quick).
		Int("warnings", outcome.Warnings).
		Msg("Wrote course database")

	return outcome, nil
}

func writeReport(path string, doc *catalog.Document) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := report.WriteCSV(f, report.Rows(doc)); err != nil {
		_ = f.Close()
		return err
	}
	return errors.WrapIO("close", path, f.Close())
}
