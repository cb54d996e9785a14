// ABOUTME: Error types and handling for the auto reader library
// ABOUTME: Provides structured errors with context for library operations

package autoreader

import (
	"errors"
	"fmt"

	coreerrors "autoreader-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeStorage indicates the preference store could not be reached
	ErrorTypeStorage ErrorType = "storage"

	// ErrorTypeHost indicates the host could not answer a query
	ErrorTypeHost ErrorType = "host"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Common errors
var (
	// ErrClientClosed is returned when operations are attempted on a closed client
	ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

	// ErrNoHost is returned when an event is handled without a configured host
	ErrNoHost = NewError(ErrorTypeConfiguration, "no host configured")
)

// wrapCoreError converts core errors into library errors
func wrapCoreError(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case coreerrors.IsStorageUnavailable(err):
		return NewError(ErrorTypeStorage, op+" failed").WithCause(err)
	case coreerrors.IsValidation(err):
		return NewError(ErrorTypeValidation, op+" failed").WithCause(err)
	default:
		return NewError(ErrorTypeHost, op+" failed").WithCause(err)
	}
}

func isType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsStorageError checks if an error came from an unreachable preference store
func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
