// Package errs holds the error kinds shared by the plotting packages.
//
// Call sites wrap one of the sentinels with context so callers can match
// with errors.Is while still getting a readable message.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrShape reports mismatched lengths between x, y and label inputs.
	ErrShape = errors.New("shape mismatch")
	// ErrFit reports that a series has too few (or degenerate) points for the requested fit.
	ErrFit = errors.New("fit failed")
	// ErrNotFound reports a missing file, header line or data body.
	ErrNotFound = errors.New("not found")
	// ErrConfiguration reports an invalid option such as an unknown colormap name.
	ErrConfiguration = errors.New("invalid configuration")
)

func Shapef(format string, a ...interface{}) error { return wrap(ErrShape, format, a...) }
func Fitf(format string, a ...interface{}) error   { return wrap(ErrFit, format, a...) }
func NotFoundf(format string, a ...interface{}) error {
	return wrap(ErrNotFound, format, a...)
}
func Configf(format string, a ...interface{}) error { return wrap(ErrConfiguration, format, a...) }

func wrap(kind error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...))
}
