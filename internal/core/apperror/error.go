// Package apperror provides structured error handling for the platform.
// All business errors must use AppError for consistent API responses.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes following the domain taxonomy
const (
	// Infrastructure errors (5xx)
	CodeInternal        = "INTERNAL_ERROR"
	CodeRemoteOperation = "REMOTE_OPERATION_FAILED"

	// Validation errors (400)
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeInvalidReportType = "INVALID_REPORT_TYPE"

	// Authentication errors (401)
	CodeNotAuthenticated = "NOT_AUTHENTICATED"

	// Not found (404)
	CodeNotFound = "NOT_FOUND"

	// Conflict (409)
	CodeDuplicate = "DUPLICATE_ENTRY"
)

// AppError is the standard error type for the platform.
// It implements error interface and provides structured details for API responses.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (field errors, quantities, etc.)
	Details map[string]any `json:"details,omitempty"`

	// HTTPStatus is the suggested HTTP status code
	HTTPStatus int `json:"-"`

	// Err is the underlying error (not exposed in JSON)
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions for common errors ---

// NewInvalidArgument creates a validation error (400)
func NewInvalidArgument(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidArgument,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidReportType creates an error for an unrecognized report type (400)
func NewInvalidReportType(reportType string) *AppError {
	return &AppError{
		Code:       CodeInvalidReportType,
		Message:    "invalid report type",
		HTTPStatus: http.StatusBadRequest,
		Details:    map[string]any{"type": reportType},
	}
}

// NewNotFound creates a not found error (404)
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"entity": entity, "id": id},
	}
}

// NewNotAuthenticated creates an authentication error (401).
// Raised before any store call when no owner identity is available.
func NewNotAuthenticated() *AppError {
	return &AppError{
		Code:       CodeNotAuthenticated,
		Message:    "user not authenticated",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewUnauthorized creates an authentication error with a custom message (401)
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:       CodeNotAuthenticated,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewRemoteOperation wraps a failed record-store call.
// Store failures surface once to the caller and are not retried.
func NewRemoteOperation(operation string, err error) *AppError {
	return &AppError{
		Code:       CodeRemoteOperation,
		Message:    "record store operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Details:    map[string]any{"operation": operation},
		Err:        err,
	}
}

// NewInternal creates an internal server error (hides details from client)
func NewInternal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewDuplicate creates a duplicate entry error (409)
func NewDuplicate(entity, field, value string) *AppError {
	return &AppError{
		Code:       CodeDuplicate,
		Message:    fmt.Sprintf("%s with this %s already exists", entity, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"entity": entity, "field": field, "value": value},
	}
}

// --- Helper functions ---

// IsAppError checks if error is AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError extracts AppError from error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetHTTPStatus returns appropriate HTTP status for any error
func GetHTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsNotFound checks if error is CodeNotFound
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsNotAuthenticated checks if error is CodeNotAuthenticated
func IsNotAuthenticated(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotAuthenticated
	}
	return false
}

// IsInvalidArgument checks if error is CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeInvalidArgument
	}
	return false
}
