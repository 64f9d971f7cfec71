// Package apperrors defines the error taxonomy shared across the back office.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// NewValidationError wraps ErrValidation with a field-level detail so callers
// can match with errors.Is while still surfacing what was wrong.
func NewValidationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

// SchemaError signals that the backing store's schema does not match what the
// code expects (e.g. an expected column is absent). It is an operational
// condition for an administrator, not a user input error, and is therefore a
// distinct type rather than another sentinel.
type SchemaError struct {
	Table  string
	Column string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema migration required: table %q is missing column %q: %v", e.Table, e.Column, e.Err)
	}
	return fmt.Sprintf("schema migration required: table %q: %v", e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
