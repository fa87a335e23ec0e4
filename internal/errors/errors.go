// Package errors is the single errors import for menuboard: matching comes from the standard
// library and wrapping from pkg/errors, so a wrapped failure carries the stack of its first wrap.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error without a stack; wrap it at the failure site.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and, if err has none yet, a stack. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if StackOf(err) != "" {
		return pkgerrors.WithMessage(err, message)
	}

	return pkgerrors.Wrap(err, message)
}

// WithStack records the caller's stack on err unless one is already present.
func WithStack(err error) error {
	if err == nil || StackOf(err) != "" {
		return err
	}

	return pkgerrors.WithStack(err)
}

// Errorf formats a new error carrying a stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf returns the deepest stack recorded in err's chain, one frame per line, or "" if none.
func StackOf(err error) string {
	var deepest stackTracer
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return ""
	}

	return fmt.Sprintf("%+v", deepest.StackTrace())
}
