package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single violated field constraint. It carries
// the field name, the constraint that failed, and the offending value so
// callers can report exactly what was wrong.
type ValidationError struct {
	Field   string
	Message string
	Value   string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field wrapping
// the provided sentinel error.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}

// ValidationErrors collects every violated constraint found during entity
// validation so a single failed write can name all offending fields.
type ValidationErrors []*ValidationError

// Error implements the error interface by joining all field messages.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match the collection.
func (e ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Fields returns the names of all violated fields in declaration order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, ve := range e {
		fields = append(fields, ve.Field)
	}
	return fields
}

// IsValidationError reports whether err is a domain validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
