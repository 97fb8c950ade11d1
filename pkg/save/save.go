// Package save writes built course databases to disk or to a writer.
package save

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/suwonmate/catalogdb/pkg/constants"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

// ResultPath returns the database file path for a db version under dir.
func ResultPath(dir, dbVersion string) string {
	return filepath.Join(dir, constants.ResultFileName(dbVersion))
}

// Save writes data according to opts and returns the paths written. With
// a writer set the data goes only to the writer. With a path set the file
// is written, and with brotli compression a ".br" sibling is written too.
func Save(data []byte, opts ...Option) ([]string, error) {
	o := Defaults().Apply(opts...)
	if !o.compression.IsValid() {
		return nil, errors.NewValidationError("compression", o.compression, "unsupported compression")
	}

	if o.writer != nil {
		if o.compression == CompressionBrotli {
			return nil, writeBrotli(o.writer, data)
		}
		_, err := o.writer.Write(data)
		return nil, errors.WrapIO("write", "writer", err)
	}

	if o.path == "" {
		return nil, errors.NewValidationError("path", "", "either a path or a writer is required")
	}
	if err := os.MkdirAll(filepath.Dir(o.path), constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(o.path), err)
	}

	var written []string
	if o.keepPlain || o.compression == CompressionNone {
		if err := writeFile(o.path, data); err != nil {
			return written, err
		}
		written = append(written, o.path)
	}

	if o.compression == CompressionBrotli {
		var buf bytes.Buffer
		if err := writeBrotli(&buf, data); err != nil {
			return written, err
		}
		path := o.path + constants.CompressedExt
		if err := writeFile(path, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

// writeFile writes through a temp file in the same directory so a reader
// never sees a partially written database.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmp.Name(), constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", path, err)
	}
	return errors.WrapIO("rename", path, os.Rename(tmp.Name(), path))
}

func writeBrotli(w io.Writer, data []byte) error {
	bw := brotli.NewWriterLevel(w, constants.BrotliQuality)
	if _, err := bw.Write(data); err != nil {
		_ = bw.Close()
		return errors.WrapIO("compress", "", err)
	}
	return errors.WrapIO("compress", "", bw.Close())
}

// Decompress reads a brotli stream fully.
func Decompress(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(brotli.NewReader(r))
	if err != nil {
		return nil, errors.WrapIO("decompress", "", err)
	}
	return data, nil
}

// ReadFile reads a saved database, decompressing it when the path ends
// in the brotli extension. A missing file yields a *errors.NotFoundError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NewNotFoundError("database", path, err)
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if !strings.HasSuffix(path, constants.CompressedExt) {
		return data, nil
	}
	return Decompress(bytes.NewReader(data))
}
