// Package schema validates built course databases.
package schema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/suwonmate/catalogdb/pkg/catalog"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

//go:embed result.schema.json
var resultSchema []byte

// Schema returns the JSON Schema of a result document.
func Schema() []byte {
	out := make([]byte, len(resultSchema))
	copy(out, resultSchema)
	return out
}

// FieldError is a single validation failure at a field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failure found in one document.
type ValidationError struct {
	Name   string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is not a valid course database:", ve.Name)
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Is implements errors.Is support
func (ve *ValidationError) Is(target error) bool {
	return target == errors.ErrInvalidInput
}

// Validate checks content against the result schema, then checks that the
// subject and contact maps name the same departments.
func Validate(name string, content []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(resultSchema),
		gojsonschema.NewBytesLoader(content),
	)
	if err != nil {
		return errors.WrapParse("json", name, err)
	}

	if !result.Valid() {
		ve := &ValidationError{Name: name}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return ve
	}

	doc, err := catalog.ParseDocument(name, content)
	if err != nil {
		return err
	}
	if fields := departmentMismatch(doc); len(fields) > 0 {
		return &ValidationError{Name: name, Errors: fields}
	}
	return nil
}

func departmentMismatch(doc *catalog.Document) []FieldError {
	_, subjKey := doc.Keys()

	var fields []FieldError
	for _, dept := range sortedKeys(doc.Subjects) {
		if _, ok := doc.Contacts[dept]; !ok {
			fields = append(fields, FieldError{
				Field:   catalog.KeyContacts,
				Message: fmt.Sprintf("department %q is missing", dept),
			})
		}
	}
	for _, dept := range sortedKeys(doc.Contacts) {
		if _, ok := doc.Subjects[dept]; !ok {
			fields = append(fields, FieldError{
				Field:   subjKey,
				Message: fmt.Sprintf("department %q is missing", dept),
			})
		}
	}
	return fields
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
