package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suwonmate/catalogdb/internal/loader"
	pkgerrors "github.com/suwonmate/catalogdb/pkg/errors"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	openPath := writeTemp(t, "open.json", `{"estbLectDtaiList":[1]}`)
	todoPath := writeTemp(t, "todo.json", `{"estbLectDtaiList":[2]}`)

	in, err := loader.Load(context.Background(), openPath, todoPath)
	require.NoError(t, err)
	assert.Equal(t, `{"estbLectDtaiList":[1]}`, string(in.OpenClass))
	assert.Equal(t, `{"estbLectDtaiList":[2]}`, string(in.ClassTodo))
	assert.False(t, in.Same())
}

func TestLoadSameFile(t *testing.T) {
	path := writeTemp(t, "both.json", `{"estbLectDtaiList":[]}`)

	in, err := loader.Load(context.Background(), path, path)
	require.NoError(t, err)
	assert.Equal(t, in.OpenClass, in.ClassTodo)
	assert.True(t, in.Same())
}

func TestLoadErrors(t *testing.T) {
	existing := writeTemp(t, "open.json", `{}`)
	missing := filepath.Join(t.TempDir(), "missing.json")

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(context.Background(), existing, missing)
		var ioErr *pkgerrors.IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, missing, ioErr.Path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := loader.Load(context.Background(), "", existing)
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := loader.Load(ctx, existing, existing)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
