package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrFileRequired     = errors.New("file is required")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

	// Storage backend errors
	ErrStorageFailed    = errors.New("storage backend failed")
	ErrFormatNotAllowed = errors.New("file format not allowed")

	// Persistence errors
	ErrPersistenceFailed = errors.New("database operation failed")
	ErrDuplicateUsername = errors.New("username already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates an error that matches ErrValidationFailed with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewStorageError creates an error that matches ErrStorageFailed with a message
func NewStorageError(err error, message string) error {
	return &CustomError{Err: errors.Join(ErrStorageFailed, err), Message: message}
}

// NewNotFoundError creates an error that matches ErrNotFound with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewPersistenceError creates an error that matches ErrPersistenceFailed with a message
func NewPersistenceError(err error, message string) error {
	return &CustomError{Err: errors.Join(ErrPersistenceFailed, err), Message: message}
}
