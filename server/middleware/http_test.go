package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/server/middleware"
)

func captureLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", buf)
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func TestRecovery_NoPanic(t *testing.T) {
	handler := middleware.Recovery(logger.Nop())(http.HandlerFunc(okHandler))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRecovery_Panic(t *testing.T) {
	var buf bytes.Buffer
	handler := middleware.Recovery(captureLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/dw/news", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("unexpected error code %q", body.Error.Code)
	}
	if !strings.Contains(buf.String(), "test panic") {
		t.Errorf("expected the panic to be logged, got %s", buf.String())
	}
}

func TestRequestID_GeneratesID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(middleware.HeaderRequestID)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	got := rr.Header().Get(middleware.HeaderRequestID)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected a UUID response header, got %q", got)
	}
	if seen != got {
		t.Errorf("expected handler to see %q, got %q", got, seen)
	}
}

func TestRequestID_PreservesValidID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(okHandler))
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(middleware.HeaderRequestID, id)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get(middleware.HeaderRequestID); got != id {
		t.Errorf("expected %q to be kept, got %q", id, got)
	}
}

func TestRequestID_ReplacesInvalidID(t *testing.T) {
	handler := middleware.RequestID()(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(middleware.HeaderRequestID, "<script>")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := rr.Header().Get(middleware.HeaderRequestID)
	if got == "<script>" {
		t.Fatal("expected an invalid id to be replaced")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("expected a UUID, got %q", got)
	}
}

func TestCORS(t *testing.T) {
	cfg := middleware.CORSConfig{
		AllowedOrigins: []string{"https://example.com"},
		AllowedHeaders: []string{"Accept"},
	}
	handler := middleware.CORS(cfg)(http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{"allowed", http.MethodGet, "https://example.com", http.StatusOK, "https://example.com"},
		{"preflight", http.MethodOptions, "https://example.com", http.StatusNoContent, "https://example.com"},
		{"disallowed", http.MethodGet, "https://evil.com", http.StatusOK, ""},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/", http.NoBody)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected %d, got %d", tc.wantStatus, rr.Code)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("expected origin %q, got %q", tc.wantOrigin, got)
			}
		})
	}
}

func TestCORS_Wildcard(t *testing.T) {
	handler := middleware.CORS(middleware.CORSConfig{AllowedOrigins: []string{"*"}})(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Origin", "https://anywhere.test")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
		t.Errorf("unexpected methods %q", got)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := middleware.RequestLogger(captureLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/hackernews/top?count=3", http.NoBody))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON record, got %s", buf.String())
	}
	if entry["level"] != "error" || entry["status"] != float64(502) || entry["query"] != "count=3" {
		t.Errorf("unexpected record %v", entry)
	}
}

func TestRequestLogger_SkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	handler := middleware.RequestLogger(captureLogger(&buf))(http.HandlerFunc(okHandler))

	for _, path := range []string{"/health", "/version"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}
	if buf.Len() != 0 {
		t.Errorf("expected probes to be skipped, got %s", buf.String())
	}
}

func TestRequestLogger_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	chain := middleware.Chain(middleware.RequestID(), middleware.RequestLogger(captureLogger(&buf)))
	handler := chain(http.HandlerFunc(okHandler))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/smhi/warnings", http.NoBody))

	id := rr.Header().Get(middleware.HeaderRequestID)
	if !strings.Contains(buf.String(), `"request_id":"`+id+`"`) {
		t.Errorf("expected request id %s in %s", id, buf.String())
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		}
	}
	handler := middleware.Chain(mw("A"), mw("B"))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	want := "A-before,B-before,handler,B-after,A-after"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
