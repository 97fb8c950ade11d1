package catalog

import (
	"context"

	"github.com/suwonmate/catalogdb/pkg/errors"
	"github.com/suwonmate/catalogdb/pkg/logging"
)

// Stats summarizes one merge pass.
type Stats struct {
	Departments int `json:"departments"`
	Indexed     int `json:"indexed"`
	OpenClasses int `json:"open_classes"`
	Merged      int `json:"merged"`
	Dropped     int `json:"dropped"`
	Unmatched   int `json:"unmatched"`
	Contacts    int `json:"contacts"`
}

// Merged holds the three maps built by the merge pass.
type Merged struct {
	Departments Taxonomy
	Subjects    Subjects
	Contacts    Contacts
	Warnings    []*errors.DepartmentWarning
	Stats       Stats
}

// Merge runs the merge pass over the open-class subjects. Subject buckets
// and contact maps are seeded from the index's departments before any
// record is processed, so every syllabus department appears in the output.
// Records whose department is absent or was not seeded are dropped with a
// warning.
func Merge(ctx context.Context, open []RawSubject, ix *Index) *Merged {
	log := logging.FromContext(ctx)

	m := &Merged{
		Departments: make(Taxonomy),
		Subjects:    make(Subjects),
		Contacts:    make(Contacts),
	}
	for _, dept := range ix.Departments() {
		m.Subjects[dept] = []Course{}
		m.Contacts[dept] = make(map[string]Contact)
	}
	m.Stats.Departments = len(m.Subjects)
	m.Stats.Indexed = ix.Len()
	m.Stats.OpenClasses = len(open)

	for _, subject := range open {
		key := subject.Key()
		info := ix.Lookup(key)
		if !info.Matched() {
			m.Stats.Unmatched++
		}

		if info.Major != nil {
			if info.Department != nil {
				majors, ok := m.Departments[*info.Department]
				if !ok {
					majors = make(MajorSet)
					m.Departments[*info.Department] = majors
				}
				majors.Add(*info.Major)
			} else {
				log.Debug().
					Str("subject_code", key.Code).
					Str("section", key.Section).
					Str("major", *info.Major).
					Msg("Major resolved without department")
			}
		}

		bucket, ok := m.bucket(info.Department)
		if !ok {
			m.drop(ctx, key, info)
			continue
		}
		m.Subjects[*info.Department] = append(bucket, newCourse(subject, info))
		m.Stats.Merged++

		if name, ok := subject.String(FieldInstructor); ok {
			m.Contacts[*info.Department][name] = Contact{Email: info.Values.Email, Phone: info.Values.Phone}
		}
	}

	for _, contacts := range m.Contacts {
		m.Stats.Contacts += len(contacts)
	}

	return m
}

// bucket returns the seeded subject sequence for a department. An absent
// department never matches, even when "" was seeded.
func (m *Merged) bucket(dept *string) ([]Course, bool) {
	if dept == nil {
		return nil, false
	}
	bucket, ok := m.Subjects[*dept]
	return bucket, ok
}

func (m *Merged) drop(ctx context.Context, key SubjectKey, info TodoInfo) {
	w := &errors.DepartmentWarning{
		SubjectCode: key.Code,
		Section:     key.Section,
		Message:     "department not found in syllabus",
	}
	switch {
	case !info.Matched():
		w.Message = "no matching syllabus record"
	case info.Department == nil:
		w.Message = "syllabus record has no department"
	default:
		w.Department = *info.Department
	}
	m.Warnings = append(m.Warnings, w)
	m.Stats.Dropped++

	logging.FromContext(ctx).Warn().
		Str("department", w.Department).
		Str("subject_code", key.Code).
		Str("section", key.Section).
		Msg("Failed to classify subject: " + w.Message)
}
