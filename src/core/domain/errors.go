// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a request value fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameter is returned for a list parameter outside its
	// allow-list (sort column or direction).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDatabase is returned when the database or the driver fails.
	ErrDatabase = errors.New("database error")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Cause is the lower-level error, if any.
	Cause error
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap exposes both the base and the cause to errors.Is/As.
func (e *DomainError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Base, e.Cause}
	}
	return []error{e.Base}
}

// NewNotFoundError creates a not found error with a client-facing message.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewParameterError creates an error for a disallowed list parameter.
func NewParameterError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidParameter,
		Message: message,
		Field:   field,
	}
}

// NewDatabaseError wraps a driver error. message is the diagnostic text
// surfaced to the client.
func NewDatabaseError(message string, cause error) *DomainError {
	return &DomainError{
		Base:    ErrDatabase,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidParameter checks if an error is a disallowed list parameter.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsDatabaseError checks if an error came from the database.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabase)
}
