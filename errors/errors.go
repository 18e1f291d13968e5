// Package errors provides the application error shared by the API wrappers,
// the CLI and the HTTP facade.
package errors

import (
	"fmt"
)

// AppError carries a code, a message safe to show callers and an optional cause.
type AppError struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Retryable  bool           `json:"retryable"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func newError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: code.HTTPStatus(),
		Retryable:  code.Retryable(),
	}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail adds one detail and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// InvalidOperation rejects a call before any request is sent, such as a
// language the news API has no edition for.
func InvalidOperation(message string) *AppError {
	return newError(ErrCodeInvalidOperation, message)
}

// InvalidInput reports a single bad field.
func InvalidInput(field, reason string) *AppError {
	return newError(ErrCodeInvalidInput, fmt.Sprintf("Invalid input: %s", reason)).WithDetail("field", field)
}

// Validation reports one or more bad fields in a single message.
func Validation(message string) *AppError {
	return newError(ErrCodeInvalidInput, message)
}

// Upstream wraps a failed call to a third-party API. status is omitted from
// the details when no response was received.
func Upstream(service, url string, status int, cause error) *AppError {
	e := newError(ErrCodeExternalService, fmt.Sprintf("The %s service encountered an error.", service)).
		WithCause(cause).
		WithDetail("service", service).
		WithDetail("upstream_url", url)
	if status != 0 {
		e.WithDetail("upstream_status", status)
	}
	return e
}

// Unavailable reports an upstream client that is not available.
func Unavailable(service string) *AppError {
	return newError(ErrCodeServiceUnavailable, fmt.Sprintf("%s is not available", service)).WithDetail("service", service)
}

// Internal hides cause from callers behind a generic message.
func Internal(cause error) *AppError {
	return newError(ErrCodeInternal, "An unexpected error occurred.").WithCause(cause)
}
