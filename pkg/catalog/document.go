package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/suwonmate/catalogdb/pkg/constants"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

// Top-level keys of a result document.
const (
	KeyDepartments      = "departments"
	KeyDepartmentsQuick = "departments_quick"
	KeySubjects         = constants.SubjectListKey
	KeySubjectsQuick    = constants.SubjectListKey + "_quick"
	KeyContacts         = "contacts"
	KeyVersion          = "version"
)

// Version is the version block of a result document.
type Version struct {
	AppVersion       string `json:"app_ver"`
	DBVersion        string `json:"db_ver"`
	LegacyAppVersion string `json:"legacy_app_ver"`
}

// NewVersion builds the version block. The legacy app version is always
// constants.LegacyAppVersion.
func NewVersion(appVersion, dbVersion string) Version {
	return Version{
		AppVersion:       appVersion,
		DBVersion:        dbVersion,
		LegacyAppVersion: constants.LegacyAppVersion,
	}
}

// Document is the consolidated course database.
type Document struct {
	Quick       bool
	Departments Taxonomy
	Subjects    Subjects
	Contacts    Contacts
	Version     Version
}

// Assemble builds the result document from a merge.
func Assemble(m *Merged, version Version, quick bool) *Document {
	return &Document{
		Quick:       quick,
		Departments: m.Departments,
		Subjects:    m.Subjects,
		Contacts:    m.Contacts,
		Version:     version,
	}
}

// Keys returns the departments and subjects keys for the document's mode.
func (d *Document) Keys() (departments, subjects string) {
	if d.Quick {
		return KeyDepartmentsQuick, KeySubjectsQuick
	}
	return KeyDepartments, KeySubjects
}

// Encode renders the document as JSON text. Compact output matches what the
// app has always consumed; object keys are sorted and majors are listed in
// ascending order, so equal inputs always encode to equal bytes.
func (d *Document) Encode(pretty bool) ([]byte, error) {
	deptKey, subjKey := d.Keys()

	departments := make(map[string][]string, len(d.Departments))
	for dept, majors := range d.Departments {
		departments[dept] = majors.Sorted()
	}

	wire := map[string]any{
		deptKey:     departments,
		subjKey:     nonNilSubjects(d.Subjects),
		KeyContacts: nonNilContacts(d.Contacts),
		KeyVersion:  d.Version,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(wire); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func nonNilSubjects(s Subjects) Subjects {
	if s == nil {
		return Subjects{}
	}
	return s
}

func nonNilContacts(c Contacts) Contacts {
	if c == nil {
		return Contacts{}
	}
	return c
}

// ParseDocument decodes a result document produced by Encode. The mode is
// taken from whichever departments key is present.
func ParseDocument(name string, content []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil {
		return nil, errors.WrapParse("json", name, err)
	}

	d := &Document{}
	if _, ok := top[KeyDepartmentsQuick]; ok {
		d.Quick = true
	}
	deptKey, subjKey := d.Keys()

	fields := []struct {
		key    string
		target any
	}{
		{subjKey, &d.Subjects},
		{KeyContacts, &d.Contacts},
		{KeyVersion, &d.Version},
	}
	for _, f := range fields {
		raw, ok := top[f.key]
		if !ok {
			return nil, errors.NewValidationError(f.key, nil, "missing top-level key")
		}
		if err := json.Unmarshal(raw, f.target); err != nil {
			return nil, errors.WrapParse("json", name, err)
		}
	}

	raw, ok := top[deptKey]
	if !ok {
		return nil, errors.NewValidationError(deptKey, nil, "missing top-level key")
	}
	var departments map[string][]string
	if err := json.Unmarshal(raw, &departments); err != nil {
		return nil, errors.WrapParse("json", name, err)
	}
	d.Departments = make(Taxonomy, len(departments))
	for dept, majors := range departments {
		set := make(MajorSet, len(majors))
		for _, m := range majors {
			set.Add(m)
		}
		d.Departments[dept] = set
	}

	return d, nil
}
