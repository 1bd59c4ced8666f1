package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a user has no stored record of the requested kind.
var ErrNotFound = errors.New("not found")

// ValidationError represents a rejected input field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
