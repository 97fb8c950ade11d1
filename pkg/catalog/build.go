package catalog

import (
	"bytes"
	"context"

	"github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

// Result is the outcome of a database build.
type Result struct {
	Document *Document
	Warnings []*errors.DepartmentWarning
	Stats    Stats

	pretty bool
}

// Bytes encodes the result document.
func (r *Result) Bytes() ([]byte, error) {
	return r.Document.Encode(r.pretty)
}

// QuickMode reports whether a build is a quick (single-source) run, which
// is the case exactly when both inputs are byte-identical.
func QuickMode(openClass, classTodo []byte) bool {
	return bytes.Equal(openClass, classTodo)
}

// Build merges the open-class and class-todo documents into a result
// document. Structural problems in either input abort the build with a
// typed error; per-record anomalies are reported in Result.Warnings.
func Build(ctx context.Context, openClass, classTodo []byte, appVersion, dbVersion string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	quick := QuickMode(openClass, classTodo)
	if o.quick != nil {
		quick = *o.quick
	}

	open, err := ParseSource(o.openName, openClass)
	if err != nil {
		return nil, err
	}
	todo, err := ParseSource(o.todoName, classTodo)
	if err != nil {
		return nil, err
	}

	ix := NewIndex(logging.WithOperation(logging.WithSource(ctx, o.todoName), "index"), todo.Subjects)
	merged := Merge(logging.WithOperation(logging.WithSource(ctx, o.openName), "merge"), open.Subjects, ix)

	logging.FromContext(ctx).Info().
		Bool("quick", quick).
		Int("departments", merged.Stats.Departments).
		Int("merged", merged.Stats.Merged).
		Int("dropped", merged.Stats.Dropped).
		Int("contacts", merged.Stats.Contacts).
		Msg("Merged course catalogs")

	return &Result{
		Document: Assemble(merged, NewVersion(appVersion, dbVersion), quick),
		Warnings: merged.Warnings,
		Stats:    merged.Stats,
		pretty:   o.pretty,
	}, nil
}

// MakeDBContent builds the database text from the two source texts. It is
// the plain-string form of Build with the mode supplied by the caller.
func MakeDBContent(openClass, classTodo, appVersion, dbVersion string, quickMode bool) (string, error) {
	result, err := Build(context.Background(), []byte(openClass), []byte(classTodo),
		appVersion, dbVersion, WithQuickMode(quickMode))
	if err != nil {
		return "", err
	}
	data, err := result.Bytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
