// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// StorageUnavailableError means the backing preference store could not be read or written
type StorageUnavailableError struct {
	Op    string
	Cause error
}

// Error implements the error interface
func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Cause)
}

// Unwrap returns the backend error
func (e *StorageUnavailableError) Unwrap() error {
	return e.Cause
}

// HostCommandRejectedError means the host refused a toggle or badge command
type HostCommandRejectedError struct {
	Command string
	TabID   int
	Reason  string
}

// Error implements the error interface
func (e *HostCommandRejectedError) Error() string {
	return fmt.Sprintf("host rejected %s for tab %d: %s", e.Command, e.TabID, e.Reason)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsStorageUnavailable checks if an error is a StorageUnavailableError
func IsStorageUnavailable(err error) bool {
	var storageErr *StorageUnavailableError
	return errors.As(err, &storageErr)
}

// IsHostCommandRejected checks if an error is a HostCommandRejectedError
func IsHostCommandRejected(err error) bool {
	var hostErr *HostCommandRejectedError
	return errors.As(err, &hostErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
