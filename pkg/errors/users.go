// Package errors provides user-record error definitions for goAdminPanel.
// The record API raises typed errors; the state layer converts every one of
// them into a single user-facing message and never exposes internal detail.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an APIError for handling policy decisions.
type Kind int

const (
	// KindTransient marks simulated network failures. Retried only when the
	// user re-triggers the action.
	KindTransient Kind = iota
	// KindValidation marks rejected input (create with missing fields).
	KindValidation
	// KindNotFound marks operations against an id that is not in the collection.
	KindNotFound
)

// User-record error codes.
const (
	ErrCodeRequestFailed    = "USER_REQUEST_FAILED"
	ErrCodeValidationFailed = "USER_VALIDATION_FAILED"
	ErrCodeFieldRequired    = "USER_FIELD_REQUIRED"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
)

// APIError represents a record-API error with a stable code.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewTransientError creates the generic simulated-failure error for an operation.
func NewTransientError(operation string) *APIError {
	return &APIError{
		Code:    ErrCodeRequestFailed,
		Message: fmt.Sprintf("Failed to %s", operation),
		Kind:    KindTransient,
	}
}

// NewValidationError creates a validation error (rejected input).
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: message,
		Kind:    KindValidation,
	}
}

// NewFieldRequiredError creates a validation error for a missing required field.
func NewFieldRequiredError(field string) *APIError {
	return &APIError{
		Code:    ErrCodeFieldRequired,
		Message: fmt.Sprintf("Missing required user field: %s", field),
		Kind:    KindValidation,
	}
}

// NewUserNotFoundError creates a not-found error for the given record id.
func NewUserNotFoundError(id int) *APIError {
	return &APIError{
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("User with ID %d not found", id),
		Kind:    KindNotFound,
	}
}

// GetAPIError extracts an APIError from err, unwrapping as needed.
func GetAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTransient reports whether err is a simulated transient failure.
func IsTransient(err error) bool {
	apiErr, ok := GetAPIError(err)
	return ok && apiErr.Kind == KindTransient
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	apiErr, ok := GetAPIError(err)
	return ok && apiErr.Kind == KindValidation
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	apiErr, ok := GetAPIError(err)
	return ok && apiErr.Kind == KindNotFound
}
