package models

import "errors"

// Error kinds shared across services and mapped to HTTP statuses in handlers
var (
	// ErrNotFound marks errors for records that do not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict marks writes that collide with an existing record,
	// e.g. a duplicate enrollment
	ErrConflict = errors.New("conflict")
	// ErrForbidden marks ownership or role mismatches
	ErrForbidden = errors.New("forbidden")
	// ErrValidation marks local validation failures that block an operation
	// before any repository call is made
	ErrValidation = errors.New("validation failed")
)

// domainError carries a user-facing message while matching one of the error
// kinds above through errors.Is
type domainError struct {
	kind    error
	message string
}

func (e *domainError) Error() string {
	return e.message
}

func (e *domainError) Unwrap() error {
	return e.kind
}

// NotFound creates a not-found error with the given message
func NotFound(message string) error {
	return &domainError{kind: ErrNotFound, message: message}
}

// Conflict creates a conflict error with the given message
func Conflict(message string) error {
	return &domainError{kind: ErrConflict, message: message}
}

// Forbidden creates a forbidden error with the given message
func Forbidden(message string) error {
	return &domainError{kind: ErrForbidden, message: message}
}

// Validation creates a validation error with the given inline message
func Validation(message string) error {
	return &domainError{kind: ErrValidation, message: message}
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
