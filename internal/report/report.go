// Package report flattens a built course database into per-course rows
// and per-department summaries.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/suwonmate/catalogdb/pkg/catalog"
	"github.com/suwonmate/catalogdb/pkg/errors"
)

// Row is one merged course in the CSV report.
type Row struct {
	Department  string `csv:"department"`
	Major       string `csv:"major"`
	SubjectCode string `csv:"subject_code"`
	Section     string `csv:"section"`
	SubjectName string `csv:"subject_name"`
	Instructor  string `csv:"instructor"`
	Schedule    string `csv:"schedule"`
	Point       string `csv:"point"`
	Status      string `csv:"status"`
}

// Rows lists every course of the document. Departments are ordered by
// Korean collation; courses keep their order within a department.
func Rows(doc *catalog.Document) []Row {
	var rows []Row
	for _, dept := range SortedDepartments(keysOf(doc.Subjects)) {
		for _, c := range doc.Subjects[dept] {
			rows = append(rows, Row{
				Department:  dept,
				Major:       text(c.Major),
				SubjectCode: text(c.SubjectCode),
				Section:     text(c.Section),
				SubjectName: text(c.SubjectName),
				Instructor:  text(c.Instructor),
				Schedule:    text(c.Schedule),
				Point:       text(c.Point),
				Status:      text(c.Status),
			})
		}
	}
	return rows
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return errors.WrapIO("write", "csv report", err)
	}
	return nil
}

// SortedDepartments returns names sorted in Korean collation order.
func SortedDepartments(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	collate.New(language.Korean).SortStrings(out)
	return out
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// text renders a raw JSON scalar for a CSV cell. Null and absent become "".
func text(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	default:
		return string(raw)
	}
}
