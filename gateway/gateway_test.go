package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/felsokning/codeninjas/apis/deutschewelle"
	"github.com/felsokning/codeninjas/apis/hackernews"
	"github.com/felsokning/codeninjas/apis/smhi"
	apperrors "github.com/felsokning/codeninjas/errors"
	"github.com/felsokning/codeninjas/httpclient"
	"github.com/felsokning/codeninjas/httpclient/clienttest"
	"github.com/felsokning/codeninjas/server"
)

type fakeNews struct {
	got deutschewelle.LanguageID
	err error
}

func (f *fakeNews) GetLatestNews(_ context.Context, language deutschewelle.LanguageID) (*deutschewelle.SearchResult, error) {
	f.got = language
	if f.err != nil {
		return nil, f.err
	}
	return &deutschewelle.SearchResult{LanguageID: int(language), ResultCount: 1}, nil
}

type fakeWarnings struct {
	warnings []smhi.WarningsResult
}

func (f *fakeWarnings) GetRecentWarnings(context.Context) ([]smhi.WarningsResult, error) {
	return f.warnings, nil
}

type fakeStories struct {
	top, show int
	err       error
}

func (f *fakeStories) GetTopStories(_ context.Context, count int) ([]hackernews.Story, error) {
	f.top = count
	return []hackernews.Story{{ID: 1, Type: hackernews.ItemStory}, {ID: 2, Type: hackernews.ItemJob}}, f.err
}

func (f *fakeStories) ShowTopStories(_ context.Context, count int) ([]hackernews.Story, error) {
	f.show = count
	return nil, f.err
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *server.Meta    `json:"meta"`
}

type errorEnvelope struct {
	Error struct {
		Code      apperrors.ErrorCode `json:"code"`
		Message   string              `json:"message"`
		Retryable bool                `json:"retryable"`
		Details   map[string]any      `json:"details"`
	} `json:"error"`
}

func newHandler(t *testing.T, sources Sources) http.Handler {
	t.Helper()
	cfg := server.Config{}
	cfg.ApplyDefaults()
	srv := server.New(cfg, nil)
	New(sources, nil).Register(srv.Engine())
	return srv.Handler()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var body errorEnvelope
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %s: %v", rr.Body.String(), err)
	}
	return body
}

func TestLatestNews(t *testing.T) {
	news := &fakeNews{}
	h := newHandler(t, Sources{News: news})

	rr := get(t, h, "/v1/dw/news?language=english")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if news.got != deutschewelle.LanguageEnglish {
		t.Errorf("expected English, got %v", news.got)
	}
	var body envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	var result deutschewelle.SearchResult
	if err := json.Unmarshal(body.Data, &result); err != nil || result.LanguageID != 2 {
		t.Errorf("unexpected data %s (%v)", body.Data, err)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected the request id middleware to run")
	}
}

func TestLatestNews_BadInput(t *testing.T) {
	h := newHandler(t, Sources{News: &fakeNews{}})

	for _, target := range []string{"/v1/dw/news", "/v1/dw/news?language=Klingon"} {
		rr := get(t, h, target)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rr.Code)
			continue
		}
		if body := decodeError(t, rr); body.Error.Code != apperrors.ErrCodeInvalidInput {
			t.Errorf("%s: expected INVALID_INPUT, got %s", target, body.Error.Code)
		}
	}
}

func TestLatestNews_NoneIsRejectedLocally(t *testing.T) {
	rt := clienttest.New()
	dw, err := deutschewelle.New(httpclient.WithTransport(rt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer dw.Close()
	h := newHandler(t, Sources{News: dw})

	rr := get(t, h, "/v1/dw/news?language=None")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := decodeError(t, rr)
	if body.Error.Code != apperrors.ErrCodeInvalidOperation {
		t.Errorf("expected INVALID_OPERATION, got %s", body.Error.Code)
	}
	if body.Error.Message != "LanguageId 0 has not been implemented on the Deutsche Welle API" {
		t.Errorf("unexpected message %q", body.Error.Message)
	}
	if len(rt.Requests()) != 0 {
		t.Error("expected no upstream request")
	}
}

func TestRecentWarnings(t *testing.T) {
	h := newHandler(t, Sources{Warnings: &fakeWarnings{warnings: []smhi.WarningsResult{{ID: 1}, {ID: 2}}}})

	rr := get(t, h, "/v1/smhi/warnings")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Meta == nil || body.Meta.Count != 2 {
		t.Errorf("expected count 2, got %+v", body.Meta)
	}
}

func TestRecentWarnings_EmptyIsArray(t *testing.T) {
	h := newHandler(t, Sources{Warnings: &fakeWarnings{}})

	rr := get(t, h, "/v1/smhi/warnings")
	var body envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if string(body.Data) != "[]" {
		t.Errorf("expected an empty array, got %s", body.Data)
	}
}

func TestMissingSource(t *testing.T) {
	h := newHandler(t, Sources{})

	for _, target := range []string{"/v1/dw/news?language=English", "/v1/smhi/warnings", "/v1/hackernews/top"} {
		rr := get(t, h, target)
		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", target, rr.Code)
		}
	}
}

func TestStories_Count(t *testing.T) {
	stories := &fakeStories{}
	h := newHandler(t, Sources{Stories: stories})

	if rr := get(t, h, "/v1/hackernews/top?count=2"); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr := get(t, h, "/v1/hackernews/show"); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if stories.top != 2 || stories.show != 0 {
		t.Errorf("unexpected counts top=%d show=%d", stories.top, stories.show)
	}

	for _, target := range []string{"/v1/hackernews/top?count=-1", "/v1/hackernews/top?count=501", "/v1/hackernews/show?count=abc"} {
		if rr := get(t, h, target); rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestStories_UpstreamFailure(t *testing.T) {
	const url = "https://hacker-news.firebaseio.com/v0/topstories.json?print=pretty"
	rt := clienttest.New().Status(url, http.StatusInternalServerError, "boom")
	hn, err := hackernews.New(httpclient.WithTransport(rt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer hn.Close()
	h := newHandler(t, Sources{Stories: hn})

	rr := get(t, h, "/v1/hackernews/top?count=3")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	body := decodeError(t, rr)
	if body.Error.Code != apperrors.ErrCodeExternalService || !body.Error.Retryable {
		t.Errorf("unexpected error %+v", body.Error)
	}
	if body.Error.Details["upstream_status"] != float64(500) || body.Error.Details["upstream_url"] != url {
		t.Errorf("unexpected details %v", body.Error.Details)
	}
}

func TestStories_EndToEnd(t *testing.T) {
	const list = "https://hacker-news.firebaseio.com/v0/showstories.json?print=pretty"
	rt := clienttest.New().JSON(list, []int{7, 8})
	for id, ts := range map[int]int64{7: 100, 8: 50} {
		rt.JSON(fmt.Sprintf("https://hacker-news.firebaseio.com/v0/item/%d.json?print=pretty", id),
			hackernews.Story{ID: id, Time: ts, Type: hackernews.ItemStory})
	}
	hn, err := hackernews.New(httpclient.WithTransport(rt))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer hn.Close()
	h := newHandler(t, Sources{Stories: hn})

	rr := get(t, h, "/v1/hackernews/show")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var body struct {
		Data []hackernews.Story `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0].ID != 7 || body.Data[0].Type != hackernews.ItemStory {
		t.Errorf("unexpected stories %+v", body.Data)
	}
}
