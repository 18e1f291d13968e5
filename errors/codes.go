package errors

import "net/http"

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeInvalidOperation is a call rejected locally before any request was sent.
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	// ErrCodeInvalidInput is a malformed query parameter or config value.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeExternalService is a failure at the HTTP boundary of an upstream API.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	// ErrCodeServiceUnavailable is an upstream API the facade could not reach at startup.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

type codeInfo struct {
	status    int
	retryable bool
}

var codeTable = map[ErrorCode]codeInfo{
	ErrCodeInvalidOperation:   {http.StatusBadRequest, false},
	ErrCodeInvalidInput:       {http.StatusBadRequest, false},
	ErrCodeExternalService:    {http.StatusBadGateway, true},
	ErrCodeServiceUnavailable: {http.StatusServiceUnavailable, true},
	ErrCodeInternal:           {http.StatusInternalServerError, false},
}

// HTTPStatus is the status the facade answers with. Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	if info, ok := codeTable[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Retryable reports whether repeating the call may succeed. Nothing in this
// module retries; the flag is only reported to HTTP callers.
func (c ErrorCode) Retryable() bool {
	return codeTable[c].retryable
}
