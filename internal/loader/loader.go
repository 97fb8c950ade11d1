// Package loader reads the two course-catalog exports for a build.
package loader

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

// Inputs holds the raw bytes of both exports.
type Inputs struct {
	OpenClassPath string
	ClassTodoPath string
	OpenClass     []byte
	ClassTodo     []byte
}

// Load reads both files concurrently. It returns only after both reads
// finish, or with the first error encountered.
func Load(ctx context.Context, openClassPath, classTodoPath string) (*Inputs, error) {
	in := &Inputs{
		OpenClassPath: openClassPath,
		ClassTodoPath: classTodoPath,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := readFile(gCtx, openClassPath)
		in.OpenClass = data
		return err
	})
	g.Go(func() error {
		data, err := readFile(gCtx, classTodoPath)
		in.ClassTodo = data
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Int("open_class_bytes", len(in.OpenClass)).
		Int("class_todo_bytes", len(in.ClassTodo)).
		Msg("Loaded course catalogs")

	return in, nil
}

// Same reports whether both paths name the same file on disk.
func (in *Inputs) Same() bool {
	a, err := os.Stat(in.OpenClassPath)
	if err != nil {
		return false
	}
	b, err := os.Stat(in.ClassTodoPath)
	if err != nil {
		return false
	}
	return os.SameFile(a, b)
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, errors.NewValidationError("path", path, "input file path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}
