package httpclient

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
)

func TestReasonPhrase(t *testing.T) {
	tests := []struct {
		name   string
		status string
		code   int
		want   string
	}{
		{"from status line", "418 I'm a teapot", 418, "I'm a teapot"},
		{"custom reason", "404 Resource Missing", 404, "Resource Missing"},
		{"bare code", "503", 503, "Service Unavailable"},
		{"empty", "", 500, "Internal Server Error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := reasonPhrase(&http.Response{Status: tc.status, StatusCode: tc.code})
			if got != tc.want {
				t.Errorf("reasonPhrase(%q) = %q, want %q", tc.status, got, tc.want)
			}
		})
	}
}

func TestNewStatusError_Phrasing(t *testing.T) {
	resp := &http.Response{Status: "500 Internal Server Error", StatusCode: 500}

	get := newStatusError(http.MethodGet, "https://x.test/a", resp, "boom")
	if want := "Invalid status given in response: 500 - Internal Server Error from 'https://x.test/a'"; get.Error() != want {
		t.Errorf("GET message = %q, want %q", get.Error(), want)
	}
	put := newStatusError(http.MethodPut, "https://x.test/a", resp, "boom")
	if want := "Received 500 - Internal Server Error from 'https://x.test/a'"; put.Error() != want {
		t.Errorf("PUT message = %q, want %q", put.Error(), want)
	}
	if put.Body != "boom" || put.Transport() {
		t.Errorf("unexpected error fields: %+v", put)
	}
}

func TestNewTransportError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	wrapped := &url.Error{Op: "Get", URL: "https://x.test/a", Err: cause}

	se := newTransportError(http.MethodGet, "https://x.test/a", 0, wrapped)
	if want := "connection reset by peer from 'https://x.test/a'"; se.Error() != want {
		t.Errorf("message = %q, want %q", se.Error(), want)
	}
	if !errors.Is(se, cause) || !se.Transport() {
		t.Error("expected the unwrapped cause to be kept")
	}

	withStatus := newTransportError(http.MethodGet, "https://x.test/a", 200, io.ErrUnexpectedEOF)
	if want := "200 - unexpected EOF from 'https://x.test/a'"; withStatus.Error() != want {
		t.Errorf("message = %q, want %q", withStatus.Error(), want)
	}
}

func TestIsNotFound(t *testing.T) {
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors are not 404s")
	}
	if IsNotFound(&StatusError{StatusCode: 500}) {
		t.Error("500 is not a 404")
	}
	if !IsNotFound(&StatusError{StatusCode: 404}) {
		t.Error("expected 404 to be detected")
	}
	if _, ok := IsStatusError(nil); ok {
		t.Error("nil is not a StatusError")
	}
}
