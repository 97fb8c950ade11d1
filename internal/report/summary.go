package report

import "github.com/suwonmate/catalogdb/pkg/catalog"

// DepartmentSummary counts one department's entries in a database.
type DepartmentSummary struct {
	Department string `json:"department" yaml:"department"`
	Subjects   int    `json:"subjects" yaml:"subjects"`
	Majors     int    `json:"majors" yaml:"majors"`
	Contacts   int    `json:"contacts" yaml:"contacts"`
}

// Summary describes a built database.
type Summary struct {
	Quick            bool                `json:"quick" yaml:"quick"`
	AppVersion       string              `json:"app_ver" yaml:"app_ver"`
	DBVersion        string              `json:"db_ver" yaml:"db_ver"`
	LegacyAppVersion string              `json:"legacy_app_ver" yaml:"legacy_app_ver"`
	Departments      []DepartmentSummary `json:"departments" yaml:"departments"`
	Subjects         int                 `json:"subjects" yaml:"subjects"`
	Contacts         int                 `json:"contacts" yaml:"contacts"`
}

// Summarize counts subjects, majors and contacts per department. A
// department appears if any of the three maps names it.
func Summarize(doc *catalog.Document) *Summary {
	s := &Summary{
		Quick:            doc.Quick,
		AppVersion:       doc.Version.AppVersion,
		DBVersion:        doc.Version.DBVersion,
		LegacyAppVersion: doc.Version.LegacyAppVersion,
	}

	names := make(map[string]struct{})
	for dept := range doc.Subjects {
		names[dept] = struct{}{}
	}
	for dept := range doc.Contacts {
		names[dept] = struct{}{}
	}
	for dept := range doc.Departments {
		names[dept] = struct{}{}
	}

	for _, dept := range SortedDepartments(keysOf(names)) {
		d := DepartmentSummary{
			Department: dept,
			Subjects:   len(doc.Subjects[dept]),
			Majors:     len(doc.Departments[dept]),
			Contacts:   len(doc.Contacts[dept]),
		}
		s.Subjects += d.Subjects
		s.Contacts += d.Contacts
		s.Departments = append(s.Departments, d)
	}

	return s
}
