// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by commands.
const (
	// Success marks a passed check or a completed write.
	Success = "✓"

	// Error marks a failed check.
	Error = "✗"

	// Warning marks a non-fatal problem such as dropped courses.
	Warning = "!"
)
