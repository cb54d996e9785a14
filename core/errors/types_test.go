package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStorageUnavailableError_Error(t *testing.T) {
	err := &StorageUnavailableError{
		Op:    "read enabledDomains",
		Cause: errors.New("connection refused"),
	}

	expected := "storage unavailable during read enabledDomains: connection refused"
	if err.Error() != expected {
		t.Errorf("StorageUnavailableError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestStorageUnavailableError_Unwrap(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := &StorageUnavailableError{Op: "write", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause of a StorageUnavailableError")
	}
}

func TestHostCommandRejectedError_Error(t *testing.T) {
	err := &HostCommandRejectedError{
		Command: "toggleReadingMode",
		TabID:   7,
		Reason:  "tab closed",
	}

	expected := "host rejected toggleReadingMode for tab 7: tab closed"
	if err.Error() != expected {
		t.Errorf("HostCommandRejectedError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "domain",
		Message: "must not be empty",
	}

	expected := "validation error on field 'domain': must not be empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsStorageUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", &StorageUnavailableError{Op: "read"}, true},
		{"wrapped", fmt.Errorf("checking domain: %w", &StorageUnavailableError{Op: "read"}), true},
		{"other error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStorageUnavailable(tt.err); got != tt.want {
				t.Errorf("IsStorageUnavailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHostCommandRejected(t *testing.T) {
	err := WrapError(&HostCommandRejectedError{Command: "setBadge"}, "updating icon")

	if !IsHostCommandRejected(err) {
		t.Error("IsHostCommandRejected should return true for wrapped HostCommandRejectedError")
	}
	if IsHostCommandRejected(errors.New("some other error")) {
		t.Error("IsHostCommandRejected should return false for other errors")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "url"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(&StorageUnavailableError{}) {
		t.Error("IsValidation should return false for StorageUnavailableError")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	original := errors.New("original error")
	wrapped := WrapError(original, "additional context")

	expected := "additional context: original error"
	if wrapped.Error() != expected {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), expected)
	}
	if !errors.Is(wrapped, original) {
		t.Error("Wrapped error should match original with errors.Is")
	}
}
