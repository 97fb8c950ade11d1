package catalog

import "github.com/suwonmate/catalogdb/pkg/constants"

// Option configures a Build.
type Option func(*options)

type options struct {
	quick    *bool
	pretty   bool
	openName string
	todoName string
}

func defaultOptions() *options {
	return &options{
		openName: constants.OpenClassSource,
		todoName: constants.ClassTodoSource,
	}
}

// WithQuickMode forces the output mode instead of deriving it from the inputs.
func WithQuickMode(quick bool) Option {
	return func(o *options) {
		o.quick = &quick
	}
}

// WithPretty indents the encoded document.
func WithPretty(pretty bool) Option {
	return func(o *options) {
		o.pretty = pretty
	}
}

// WithSourceNames sets the names used for the two inputs in errors and logs,
// typically their file paths.
func WithSourceNames(openClass, classTodo string) Option {
	return func(o *options) {
		if openClass != "" {
			o.openName = openClass
		}
		if classTodo != "" {
			o.todoName = classTodo
		}
	}
}
