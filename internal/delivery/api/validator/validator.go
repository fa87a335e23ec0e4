// Package validator adapts go-playground/validator to echo.
package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// tableLabelPattern matches printable table labels such as "12" or "terrace-3".
var tableLabelPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]{0,31}$`)

// FieldError names a field that failed a rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error is returned by Validate and lists every failed field.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		part := f.Field + " failed " + f.Tag
		if f.Param != "" {
			part += "=" + f.Param
		}
		parts = append(parts, part)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the custom rules registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("table_label", func(fl validator.FieldLevel) bool {
		return tableLabelPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{Field: fe.StructNamespace(), Tag: fe.Tag(), Param: fe.Param()})
	}

	return &Error{Fields: fields}
}
