package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

func TestConfigure(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	path := filepath.Join(t.TempDir(), "build.log")
	closer, err := logging.Configure(&logging.Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	logging.FromContext(context.Background()).Debug().Str("db_version", "2024.1").Msg("Building database")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"db_version":"2024.1"`)
	assert.Equal(t, zerolog.DebugLevel, logging.Default().GetLevel())
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithSource(ctx, "class_todo")
	ctx = logging.WithOperation(ctx, "index")

	logging.FromContext(ctx).Info().Msg("indexed subjects")

	testLogger.AssertContains(t, `"source":"class_todo"`)
	testLogger.AssertContains(t, `"operation":"index"`)
	testLogger.AssertContains(t, "indexed subjects")
}

func TestRunID(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	assert.Empty(t, logging.RunID(ctx))

	ctx = logging.WithRunID(ctx)
	id := logging.RunID(ctx)
	require.Len(t, id, 36)

	logging.FromContext(ctx).Info().Msg("build")
	testLogger.AssertContains(t, id)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(originalLevel) })

	t.Run("defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "build.log")
		logger, closer, err := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "warn",
			Format: "json",
			Output: path,
		})
		require.NoError(t, err)

		logger.Info().Msg("filtered")
		logger.Warn().Str("department", "Business").Msg("kept")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "filtered")
		assert.Contains(t, string(data), `"department":"Business"`)
	})

	t.Run("unwritable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "build.log")
		_, _, err := logging.NewLoggerFromConfig(&logging.Config{Output: path})
		var ioErr *pkgerrors.IOError
		require.ErrorAs(t, err, &ioErr)
		assert.Equal(t, path, ioErr.Path)

		_, err = logging.Configure(&logging.Config{Output: path})
		assert.Error(t, err)
	})

	t.Run("standard streams", func(t *testing.T) {
		logger, closer, err := logging.NewLoggerFromConfig(&logging.Config{Output: "discard"})
		require.NoError(t, err)
		assert.NoError(t, closer.Close())
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("nil config", func(t *testing.T) {
		logger, _, err := logging.NewLoggerFromConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}
