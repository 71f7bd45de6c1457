package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested entity was not found.
// Repositories wrap it when a write targets a missing row; use cases
// translate it into their own not-found sentinels.
var ErrNotFound = errors.New("entity not found")

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
