package search

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a client input error: it is reported
// immediately and never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsInvalidInput checks if an error is a client input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
