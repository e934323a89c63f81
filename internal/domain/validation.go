package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every invalid field found while validating an
// entity or request. It always matches ErrValidation with errors.Is, and also
// matches the more specific cause when one is set.
type ValidationError struct {
	Fields []FieldError
	Err    error
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string, err error) *ValidationError {
	verr := &ValidationError{Err: err}
	verr.Add(field, message)
	return verr
}

// Add records another invalid field.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field has been recorded.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap exposes ErrValidation and the specific cause to errors.Is/errors.As.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || errors.Is(e.Err, ErrValidation) {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Err}
}
