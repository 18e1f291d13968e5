// Package clienttest provides an in-memory RoundTripper that answers
// requests for absolute third-party URLs from a route table.
package clienttest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Route is the canned outcome for one URL.
type Route struct {
	// Status is the HTTP status code. Defaults to 200.
	Status int
	// Body is the raw response body.
	Body string
	// Header is copied onto the response.
	Header http.Header
	// Proto is the negotiated protocol. Defaults to HTTP/2.0.
	Proto string
	// Err fails the round trip before any response exists.
	Err error
}

// Request is a recorded outbound request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// Transport is a route-table http.RoundTripper. Routes match on the full URL
// first, then on the URL without its query string. Unmatched requests get 404.
type Transport struct {
	mu       sync.Mutex
	routes   map[string]Route
	requests []Request
}

// New returns an empty Transport.
func New() *Transport {
	return &Transport{routes: make(map[string]Route)}
}

// Handle registers r for url.
func (t *Transport) Handle(url string, r Route) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes[url] = r
	return t
}

// JSON registers a 200 response carrying v encoded as JSON.
func (t *Transport) JSON(url string, v any) *Transport {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("clienttest: encode %s: %v", url, err))
	}
	return t.Handle(url, Route{Body: string(data)})
}

// Status registers a response with the given status and body.
func (t *Transport) Status(url string, status int, body string) *Transport {
	return t.Handle(url, Route{Status: status, Body: body})
}

// Fail registers a transport failure for url.
func (t *Transport) Fail(url string, err error) *Transport {
	return t.Handle(url, Route{Err: err})
}

// Requests returns every request seen so far, in arrival order.
func (t *Transport) Requests() []Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Request(nil), t.requests...)
}

// Count returns how many requests hit url, ignoring the query string.
func (t *Transport) Count(url string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, r := range t.requests {
		if r.URL == url || stripQuery(r.URL) == url {
			n++
		}
	}
	return n
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		_ = req.Body.Close()
		body = string(data)
	}

	url := req.URL.String()

	t.mu.Lock()
	t.requests = append(t.requests, Request{
		Method: req.Method,
		URL:    url,
		Header: req.Header.Clone(),
		Body:   body,
	})
	route, ok := t.routes[url]
	if !ok {
		route, ok = t.routes[stripQuery(url)]
	}
	t.mu.Unlock()

	if !ok {
		route = Route{Status: http.StatusNotFound, Body: "no route for " + url}
	}
	if route.Err != nil {
		return nil, route.Err
	}
	return route.response(req), nil
}

func (r Route) response(req *http.Request) *http.Response {
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	proto := r.Proto
	if proto == "" {
		proto = "HTTP/2.0"
	}
	major, minor, ok := http.ParseHTTPVersion(proto)
	if !ok {
		major, minor = 2, 0
	}
	header := r.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "application/json")
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         proto,
		ProtoMajor:    major,
		ProtoMinor:    minor,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(r.Body)),
		ContentLength: int64(len(r.Body)),
		Request:       req,
	}
}

func stripQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}
