package output

import (
	"io"
	"strconv"

	"github.com/suwonmate/catalogdb/internal/report"
)

// SummaryToTableData lays out a database summary as one row per
// department followed by a totals row.
func SummaryToTableData(s *report.Summary) Data {
	rows := make([][]string, 0, len(s.Departments)+1)
	majors := 0
	for _, d := range s.Departments {
		name := d.Department
		if name == "" {
			name = `""`
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(d.Subjects),
			strconv.Itoa(d.Majors),
			strconv.Itoa(d.Contacts),
		})
		majors += d.Majors
	}
	rows = append(rows, []string{
		"TOTAL",
		strconv.Itoa(s.Subjects),
		strconv.Itoa(majors),
		strconv.Itoa(s.Contacts),
	})

	return Data{
		Headers:         []string{"Department", "Subjects", "Majors", "Contacts"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignRight},
	}
}

// FormatSummary writes a database summary in the given format. Table
// output is preceded by a mode and version line.
func FormatSummary(w io.Writer, s *report.Summary, format Format) error {
	if format != FormatTable && format != "" {
		return NewFormatter(format).Format(w, s)
	}

	mode := "normal"
	if s.Quick {
		mode = "quick"
	}
	header := "mode: " + mode +
		"  app_ver: " + s.AppVersion +
		"  db_ver: " + s.DBVersion +
		"  legacy_app_ver: " + s.LegacyAppVersion + "\n"
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	return NewFormatter(FormatTable).Format(w, SummaryToTableData(s))
}
