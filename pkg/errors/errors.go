package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a missing or invalid field
	ErrorTypeValidation ErrorType = "VALIDATION_ERROR"
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeBadRequest indicates a malformed request
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	// ErrorTypeLookup indicates the external metadata provider failed
	ErrorTypeLookup ErrorType = "LOOKUP_ERROR"
	// ErrorTypeUnavailable indicates a dependency is not configured
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"
	// ErrorTypeStore indicates the persistence layer failed
	ErrorTypeStore ErrorType = "STORE_ERROR"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error returns the error message
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error
func New(errorType ErrorType, message string) error {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap wraps an error with an application error
func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// Validation creates a validation error
func Validation(message string) error {
	return New(ErrorTypeValidation, message)
}

// NotFound creates a not found error
func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

// BadRequest creates a bad request error
func BadRequest(message string) error {
	return New(ErrorTypeBadRequest, message)
}

// Lookup wraps a metadata provider failure
func Lookup(message string, err error) error {
	return Wrap(ErrorTypeLookup, message, err)
}

// Unavailable creates an unavailable error
func Unavailable(message string) error {
	return New(ErrorTypeUnavailable, message)
}

// Store wraps a persistence failure
func Store(message string, err error) error {
	return Wrap(ErrorTypeStore, message, err)
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeStore for foreign errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeStore
}

// MessageOf returns the human readable message of err.
// Wrapped causes are appended for store and lookup failures.
func MessageOf(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Err != nil && (appErr.Type == ErrorTypeStore || appErr.Type == ErrorTypeLookup) {
		return appErr.Message + ": " + appErr.Err.Error()
	}
	return appErr.Message
}

func is(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return is(err, ErrorTypeValidation)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return is(err, ErrorTypeNotFound)
}

// IsBadRequest checks if an error is a bad request error
func IsBadRequest(err error) bool {
	return is(err, ErrorTypeBadRequest)
}

// IsLookup checks if an error is a metadata lookup error
func IsLookup(err error) bool {
	return is(err, ErrorTypeLookup)
}

// IsUnavailable checks if an error is an unavailable error
func IsUnavailable(err error) bool {
	return is(err, ErrorTypeUnavailable)
}

// IsStore checks if an error is a store error
func IsStore(err error) bool {
	return is(err, ErrorTypeStore)
}

// IsDuplicateError checks if an error is a duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "duplicate entry")
}

// As is errors.As re-exported for callers that import this package as errors.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
