// Package errors is the single errors import for healthhub code. Matching goes
// through the standard library; construction and wrapping go through pkg/errors
// so every error that crosses a layer carries a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType returns the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Join combines errs; used when a rollback fails on top of the original error.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// New returns a sentinel error without a stack trace.
func New(text string) error {
	return stderrors.New(text)
}

// Errorf formats a new error and records the stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Wrap prefixes err with message and records the stack. Wrap(nil) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
