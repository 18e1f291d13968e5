package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		status    int
		retryable bool
	}{
		{"InvalidOperation", InvalidOperation("no"), ErrCodeInvalidOperation, http.StatusBadRequest, false},
		{"InvalidInput", InvalidInput("count", "bad"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"Validation", Validation("bad"), ErrCodeInvalidInput, http.StatusBadRequest, false},
		{"Upstream", Upstream("dw", "https://api.dw.com", 500, nil), ErrCodeExternalService, http.StatusBadGateway, true},
		{"Unavailable", Unavailable("smhi"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable, true},
		{"Internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v", tc.retryable)
			}
		})
	}
}

func TestErrorCode_Unknown(t *testing.T) {
	code := ErrorCode("SOMETHING_ELSE")
	if code.HTTPStatus() != http.StatusInternalServerError || code.Retryable() {
		t.Errorf("unknown codes should be non-retryable 500s")
	}
}

func TestInvalidOperation_Message(t *testing.T) {
	msg := "LanguageId 0 has not been implemented on the Deutsche Welle API"
	err := InvalidOperation(msg)
	if err.Message != msg || err.Cause != nil {
		t.Errorf("unexpected error %+v", err)
	}
	if got := err.Error(); got != "INVALID_OPERATION: "+msg {
		t.Errorf("unexpected Error() %q", got)
	}
}

func TestUpstream_Details(t *testing.T) {
	cause := fmt.Errorf("Received 500 - Internal Server Error from 'https://example.test'")
	err := Upstream("Felsökning.Utilities.YCombinator", "https://example.test", 500, cause)

	if err.Details["upstream_url"] != "https://example.test" || err.Details["upstream_status"] != 500 {
		t.Errorf("unexpected details %v", err.Details)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected the cause to be unwrappable")
	}
	if !strings.Contains(err.Error(), "cause: Received 500") {
		t.Errorf("expected cause in Error(), got %q", err.Error())
	}
}

func TestUpstream_NoStatus(t *testing.T) {
	err := Upstream("smhi", "https://example.test", 0, stderrors.New("no such host"))
	if _, ok := err.Details["upstream_status"]; ok {
		t.Errorf("expected no status without a response, got %v", err.Details)
	}
}

func TestWithDetail_NilMap(t *testing.T) {
	err := &AppError{Code: ErrCodeInternal}
	err.WithDetail("key", "val")
	if err.Details["key"] != "val" {
		t.Errorf("expected key=val, got %v", err.Details["key"])
	}
}

func TestToResponse_OmitsCause(t *testing.T) {
	err := Internal(stderrors.New("secret upstream text"))

	b, jerr := json.Marshal(err.ToResponse())
	if jerr != nil {
		t.Fatal(jerr)
	}
	if strings.Contains(string(b), "secret") {
		t.Errorf("cause leaked into response: %s", b)
	}
	if !strings.Contains(string(b), `"code":"INTERNAL_ERROR"`) {
		t.Errorf("unexpected body %s", b)
	}
}

func TestAsAppError(t *testing.T) {
	orig := InvalidInput("language", "unknown language \"Klingon\"")
	wrapped := fmt.Errorf("binding: %w", orig)

	got, ok := AsAppError(wrapped)
	if !ok || got != orig {
		t.Fatalf("expected to find the original error, got %v", got)
	}
	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("plain errors are not AppErrors")
	}
	if _, ok := AsAppError(nil); ok {
		t.Error("nil is not an AppError")
	}
}
