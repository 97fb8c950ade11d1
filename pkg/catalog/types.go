package catalog

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Field names shared by both source documents.
const (
	FieldSubjectCode = "subjtCd"
	FieldSection     = "diclNo"
	FieldDepartment  = "estbDpmjNm"
	FieldMajor       = "estbMjorNm"
	FieldEmail       = "email"
	FieldPhone       = "mpno"
	FieldInstructor  = "ltrPrfsNm"
)

// RawSubject is one subject record as delivered by either source. Only the
// fields the merge needs are interpreted; everything else is carried as raw
// JSON.
type RawSubject map[string]json.RawMessage

// String returns the field as a string. It reports false when the field is
// absent, null, or not a JSON string.
func (r RawSubject) String(field string) (string, bool) {
	raw, ok := r[field]
	if !ok {
		return "", false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// OptionalString is like String but returns nil when the field is not a string.
func (r RawSubject) OptionalString(field string) *string {
	if s, ok := r.String(field); ok {
		return &s
	}
	return nil
}

// Key returns the record's composite key. Missing parts become "".
func (r RawSubject) Key() SubjectKey {
	code, _ := r.String(FieldSubjectCode)
	section, _ := r.String(FieldSection)
	return SubjectKey{Code: code, Section: section}
}

// SubjectKey identifies one course offering: (subject code, section number).
type SubjectKey struct {
	Code    string
	Section string
}

// TodoInfo is the syllabus metadata resolved for one open-class record.
// Department and Major hold string values and decide bucket and taxonomy
// membership; a nil field is absent or not a string. Values carries the
// syllabus fields exactly as they appear and is what gets written out.
// Every field is empty when no syllabus record matches.
type TodoInfo struct {
	Department *string
	Major      *string
	Values     TodoValues
}

// TodoValues are the raw syllabus fields of a matched record. An absent
// field is nil and encodes as null.
type TodoValues struct {
	Department json.RawMessage
	Major      json.RawMessage
	Email      json.RawMessage
	Phone      json.RawMessage
}

// Matched reports whether any syllabus metadata was resolved.
func (t TodoInfo) Matched() bool {
	v := t.Values
	return present(v.Department) || present(v.Major) || present(v.Email) || present(v.Phone)
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Course is the merged record stored under a department. All fields but
// the last two are copied verbatim from the open-class record.
type Course struct {
	TargetGrade     json.RawMessage `json:"trgtGrdeCd"`
	SubjectName     json.RawMessage `json:"subjtNm"`
	Instructor      json.RawMessage `json:"ltrPrfsNm"`
	DepartmentName  json.RawMessage `json:"deptNm"`
	FacultyDivision json.RawMessage `json:"facDvnm"`
	Schedule        json.RawMessage `json:"timtSmryCn"`
	Language        json.RawMessage `json:"lssnLangNm"`
	SubjectCode     json.RawMessage `json:"subjtCd"`
	Section         json.RawMessage `json:"diclNo"`
	EstablishedYear json.RawMessage `json:"subjtEstbYear"`
	Point           json.RawMessage `json:"point"`
	Region          json.RawMessage `json:"cltTerrNm"`
	SexRestriction  json.RawMessage `json:"sexCdNm"`
	Status          json.RawMessage `json:"hffcStatNm"`
	Classification  json.RawMessage `json:"clsfNm"`
	ApprovalType    json.RawMessage `json:"capprTypeNm"`

	Department json.RawMessage `json:"estbDpmjNm"`
	Major      json.RawMessage `json:"estbMjorNm"`
}

// newCourse copies the whitelisted fields of an open-class record and
// stamps the resolved department and major.
func newCourse(r RawSubject, info TodoInfo) Course {
	return Course{
		TargetGrade:     r["trgtGrdeCd"],
		SubjectName:     r["subjtNm"],
		Instructor:      r[FieldInstructor],
		DepartmentName:  r["deptNm"],
		FacultyDivision: r["facDvnm"],
		Schedule:        r["timtSmryCn"],
		Language:        r["lssnLangNm"],
		SubjectCode:     r[FieldSubjectCode],
		Section:         r[FieldSection],
		EstablishedYear: r["subjtEstbYear"],
		Point:           r["point"],
		Region:          r["cltTerrNm"],
		SexRestriction:  r["sexCdNm"],
		Status:          r["hffcStatNm"],
		Classification:  r["clsfNm"],
		ApprovalType:    r["capprTypeNm"],
		Department:      info.Values.Department,
		Major:           info.Values.Major,
	}
}

// Contact is an instructor's contact pair, copied from the syllabus
// record as is.
type Contact struct {
	Email json.RawMessage `json:"email"`
	Phone json.RawMessage `json:"mpno"`
}

// MajorSet is a set of major names.
type MajorSet map[string]struct{}

// Add inserts a major.
func (s MajorSet) Add(major string) {
	s[major] = struct{}{}
}

// Has reports whether the major is in the set.
func (s MajorSet) Has(major string) bool {
	_, ok := s[major]
	return ok
}

// Sorted returns the majors in ascending order.
func (s MajorSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Taxonomy maps a department to the majors observed under it.
type Taxonomy map[string]MajorSet

// Subjects maps a department to its merged courses in source order.
type Subjects map[string][]Course

// Contacts maps a department to instructor name to contact.
type Contacts map[string]map[string]Contact
