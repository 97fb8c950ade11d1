// Package build provides the build command implementation.
package build

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/suwonmate/catalogdb/pkg/errors"
)

// Options configures one database build.
type Options struct {
	OpenClassPath    string `validate:"required"`
	ClassTodoPath    string `validate:"required"`
	AppVersion       string `validate:"required"`
	DBVersion        string `validate:"required,max=64,excludesall=/\\"`
	LegacyAppVersion string
	OutputDir        string `validate:"required"`
	Pretty           bool
	Compress         bool
	Report           string
}

var validate = validator.New()

// Validate checks the options and reports the first invalid field.
func (o *Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.NewValidationError(fe.Field(), fe.Value(), describe(fe))
	}
	return errors.WrapValidation("options", err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "excludesall":
		return "must not contain path separators"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
