package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means no record exists for the given token or id.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyCheckedOut means the record was already finalized and
	// cannot be checked out again.
	ErrAlreadyCheckedOut = errors.New("record already checked out")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
