package catalog

import (
	"bytes"
	"encoding/json"
	stderrors "errors"

	"github.com/suwonmate/catalogdb/pkg/constants"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

// Source is one parsed course-catalog export.
type Source struct {
	Name     string
	Subjects []RawSubject
}

// ParseSource decodes a source document and extracts its subject array.
// Invalid JSON yields a *errors.ParseError; a document without a top-level
// estbLectDtaiList array yields a *errors.MissingArrayError. Array entries
// that are not objects are kept as empty records.
func ParseSource(name string, content []byte) (*Source, error) {
	if !json.Valid(content) {
		return nil, parseError(name, content)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, errors.NewMissingArrayError(name, constants.SubjectListKey)
	}

	raw, ok := top[constants.SubjectListKey]
	if !ok || !isArray(raw) {
		return nil, errors.NewMissingArrayError(name, constants.SubjectListKey)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.WrapParse("json", name, err)
	}

	subjects := make([]RawSubject, 0, len(items))
	for _, item := range items {
		var subject RawSubject
		if err := json.Unmarshal(item, &subject); err != nil || subject == nil {
			subject = RawSubject{}
		}
		subjects = append(subjects, subject)
	}

	return &Source{Name: name, Subjects: subjects}, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// parseError reports where decoding failed, as line and column.
func parseError(name string, content []byte) error {
	var decoded any
	err := json.Unmarshal(content, &decoded)
	if err == nil {
		err = stderrors.New("invalid JSON")
	}

	pe := errors.NewParseError("json", name, err.Error(), err)
	var syntax *json.SyntaxError
	if stderrors.As(err, &syntax) {
		pe.Line, pe.Column = position(content, syntax.Offset)
	}
	return pe
}

func position(content []byte, offset int64) (line, column int) {
	if offset > int64(len(content)) {
		offset = int64(len(content))
	}
	line, column = 1, 1
	for _, b := range content[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
