package catalog

import (
	"context"

	"github.com/suwonmate/catalogdb/pkg/logging"
)

// Index answers exact-match lookups of syllabus records by composite key
// and records the distinct departments of the syllabus source.
type Index struct {
	records     map[SubjectKey]RawSubject
	departments []string
	seen        map[string]struct{}
}

// NewIndex indexes the syllabus subjects. A record without a string
// department contributes the department "". Records missing key fields are
// indexed under empty key components. When keys collide the first record in
// source order is kept.
func NewIndex(ctx context.Context, subjects []RawSubject) *Index {
	log := logging.FromContext(ctx)

	ix := &Index{
		records: make(map[SubjectKey]RawSubject, len(subjects)),
		seen:    make(map[string]struct{}),
	}

	for i, subject := range subjects {
		dept, ok := subject.String(FieldDepartment)
		if !ok {
			log.Warn().Int("index", i).Msg("Syllabus record has no department")
		}
		if _, dup := ix.seen[dept]; !dup {
			ix.seen[dept] = struct{}{}
			ix.departments = append(ix.departments, dept)
		}

		key := subject.Key()
		if _, dup := ix.records[key]; dup {
			log.Debug().
				Str("subject_code", key.Code).
				Str("section", key.Section).
				Msg("Duplicate syllabus key, keeping first record")
			continue
		}
		ix.records[key] = subject
	}

	return ix
}

// Departments returns the distinct syllabus departments in first-seen order.
func (ix *Index) Departments() []string {
	out := make([]string, len(ix.departments))
	copy(out, ix.departments)
	return out
}

// Len returns the number of distinct keys indexed.
func (ix *Index) Len() int {
	return len(ix.records)
}

// Lookup resolves the syllabus metadata for a key. An unseen key yields a
// TodoInfo with every field absent.
func (ix *Index) Lookup(key SubjectKey) TodoInfo {
	record, ok := ix.records[key]
	if !ok {
		return TodoInfo{}
	}
	return TodoInfo{
		Department: record.OptionalString(FieldDepartment),
		Major:      record.OptionalString(FieldMajor),
		Values: TodoValues{
			Department: record[FieldDepartment],
			Major:      record[FieldMajor],
			Email:      record[FieldEmail],
			Phone:      record[FieldPhone],
		},
	}
}
