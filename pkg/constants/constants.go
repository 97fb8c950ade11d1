// Package constants provides shared constants used throughout catalogdb.
// This includes the wire names of both course-catalog exports, output file
// naming, default versions and file permissions.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Source document constants
const (
	// SubjectListKey is the top-level array key in both source documents
	// and the subjects key of a normal-mode result.
	SubjectListKey = "estbLectDtaiList"

	// OpenClassSource names the open-class listing in errors and logs.
	OpenClassSource = "open_class"

	// ClassTodoSource names the syllabus/todo listing in errors and logs.
	ClassTodoSource = "class_todo"
)

// Version constants
const (
	// DefaultAppVersion is used when no latest app version is supplied.
	DefaultAppVersion = "1.0"

	// DefaultLegacyAppVersion is the default of the accepted-but-unused
	// legacy version flag.
	DefaultLegacyAppVersion = "1.0"

	// LegacyAppVersion is written to every result regardless of input.
	LegacyAppVersion = "0.0"
)

// Output constants
const (
	// ResultFilePrefix and ResultFileExt frame the db version in the
	// output file name: result_<db_version>.json
	ResultFilePrefix = "result_"
	ResultFileExt    = ".json"

	// CompressedExt is appended to the result file name for brotli output.
	CompressedExt = ".br"

	// BrotliQuality is the compression level for distributed results.
	BrotliQuality = 11
)

// ResultFileName returns the output file name for a database version.
func ResultFileName(dbVersion string) string {
	return ResultFilePrefix + dbVersion + ResultFileExt
}
