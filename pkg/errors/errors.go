// Package errors provides structured application errors with HTTP status
// mapping used across all handlers and services.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common failure modes
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrBadRequest    = errors.New("bad request")
	ErrValidation    = errors.New("validation failed")
	ErrConflict      = errors.New("conflict")
	ErrInternal      = errors.New("internal server error")
)

// AppError is a structured application error carrying a machine-readable
// code, a human-readable message and the HTTP status to respond with.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Details    any    `json:"details,omitempty"`
	err        error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// WithDetails attaches arbitrary details to the error (e.g. field errors)
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// Wrap attaches an underlying cause to the error
func (e *AppError) Wrap(err error) *AppError {
	e.err = err
	return e
}

// NotFound creates a 404 error
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
		err:        ErrNotFound,
	}
}

// BadRequest creates a 400 error
func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
	}
}

// Validation creates a 422 error with field-level details
func Validation(message string, details any) *AppError {
	return &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Details:    details,
		err:        ErrValidation,
	}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnauthorized,
	}
}

// Forbidden creates a 403 error
func Forbidden(message string) *AppError {
	if message == "" {
		message = "insufficient permissions"
	}
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    message,
		StatusCode: http.StatusForbidden,
		err:        ErrForbidden,
	}
}

// Conflict creates a 409 error
func Conflict(message string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    message,
		StatusCode: http.StatusConflict,
		err:        ErrConflict,
	}
}

// AlreadyExists creates a 409 error for duplicate resources
func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code:       "ALREADY_EXISTS",
		Message:    fmt.Sprintf("%s already exists", resource),
		StatusCode: http.StatusConflict,
		err:        ErrAlreadyExists,
	}
}

// Internal creates a 500 error wrapping the underlying cause
func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		err:        err,
	}
}

// AsAppError extracts an AppError from an error chain, or wraps the error
// as an internal error if it is not one.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err matches the target sentinel
func Is(err, target error) bool {
	return errors.Is(err, target)
}
