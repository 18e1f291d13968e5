package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// StatusError is returned for every failure at the HTTP boundary: a non-2xx
// status, or a transport failure before a usable response was read.
// Transport failures carry the underlying error in Err.
type StatusError struct {
	// Method is the HTTP method of the failed request.
	Method string
	// URL is the request URL.
	URL string
	// StatusCode is the HTTP status code, 0 when no response was received.
	StatusCode int
	// Reason is the status reason phrase.
	Reason string
	// Body is the raw response body of a non-2xx response.
	Body string
	// Message is the rendered error text.
	Message string
	// Err is the transport failure, nil for non-2xx responses.
	Err error
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return e.Message
}

// Unwrap returns the transport failure.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// Transport reports whether the request failed before a status was received.
func (e *StatusError) Transport() bool {
	return e.Err != nil
}

// newStatusError renders the non-2xx error for method. GET keeps its own
// phrasing; bodied methods share the "Received" form.
func newStatusError(method, rawURL string, resp *http.Response, body string) *StatusError {
	reason := reasonPhrase(resp)
	format := "Received %d - %s from '%s'"
	if method == http.MethodGet {
		format = "Invalid status given in response: %d - %s from '%s'"
	}
	return &StatusError{
		Method:     method,
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Reason:     reason,
		Body:       body,
		Message:    fmt.Sprintf(format, resp.StatusCode, reason, rawURL),
	}
}

// newTransportError renders a transport failure. statusCode is 0 when the
// failure happened before any response arrived.
func newTransportError(method, rawURL string, statusCode int, err error) *StatusError {
	cause := err
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		cause = urlErr.Err
	}

	msg := fmt.Sprintf("%s from '%s'", cause.Error(), rawURL)
	if statusCode != 0 {
		msg = fmt.Sprintf("%d - %s", statusCode, msg)
	}
	return &StatusError{
		Method:     method,
		URL:        rawURL,
		StatusCode: statusCode,
		Message:    msg,
		Err:        cause,
	}
}

// reasonPhrase extracts the reason from "404 Not Found", falling back to the
// standard text for the code.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if reason, ok := strings.CutPrefix(resp.Status, prefix); ok && reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}

// IsStatusError reports whether err is a StatusError and returns it.
func IsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 StatusError.
func IsNotFound(err error) bool {
	se, ok := IsStatusError(err)
	return ok && se.StatusCode == http.StatusNotFound
}
