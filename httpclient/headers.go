package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/util"
)

// Header names attached to every request.
const (
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"

	// MediaTypeJSON is the Accept value clients send by default.
	MediaTypeJSON = "application/json"
)

// Headers is the default header set of one Client. Names are canonicalized,
// so a name is never stored twice.
type Headers struct {
	mu sync.RWMutex
	h  http.Header
}

func newHeaders() *Headers {
	return &Headers{h: make(http.Header)}
}

// Set replaces any value stored under name.
func (h *Headers) Set(name, value string) {
	h.mu.Lock()
	h.h.Set(name, value)
	h.mu.Unlock()
}

// Del removes name. It is a no-op when name is absent.
func (h *Headers) Del(name string) {
	h.mu.Lock()
	h.h.Del(name)
	h.mu.Unlock()
}

// Get returns the value stored under name, or "".
func (h *Headers) Get(name string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.h.Get(name)
}

// Values returns every value stored under name.
func (h *Headers) Values(name string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.h.Values(name)...)
}

// Len returns the number of distinct header names.
func (h *Headers) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.h)
}

// Clear removes every header.
func (h *Headers) Clear() {
	h.mu.Lock()
	h.h = make(http.Header)
	h.mu.Unlock()
}

// Clone returns a copy that is safe to hand to a request.
func (h *Headers) Clone() http.Header {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.h.Clone()
}

// setAndClone stores value under name and snapshots the result atomically.
func (h *Headers) setAndClone(name, value string) http.Header {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.h.Set(name, value)
	return h.h.Clone()
}

// --- Client header operations ---

type headerLog struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// AddHeader replaces any default header called name with value.
func (c *Client) AddHeader(name, value string) {
	c.headers.Set(name, value)
	c.log.DebugOp("AddHeader", fmt.Sprintf("Set header '%s'", name),
		logger.Fields(logger.FieldHeaderLog, headerLog{Name: name, Value: value}))
}

// RemoveHeader deletes the default header called name. Absent names are ignored.
func (c *Client) RemoveHeader(name string) {
	c.headers.Del(name)
	c.log.DebugOp("RemoveHeader", fmt.Sprintf("Removed header '%s'", name),
		logger.Fields(logger.FieldHeaderLog, headerLog{Name: name}))
}

// GenerateRequestID stores a new random id under X-Request-ID and returns it.
func (c *Client) GenerateRequestID() string {
	id, _ := c.nextRequest()
	return id
}

// Header returns the default header value stored under name.
func (c *Client) Header(name string) string {
	return c.headers.Get(name)
}

// Headers returns a snapshot of the default headers.
func (c *Client) Headers() http.Header {
	return c.headers.Clone()
}

// nextRequest generates a request id and returns it with the header snapshot
// the request must be sent with.
func (c *Client) nextRequest() (string, http.Header) {
	id := util.NewID()
	snapshot := c.headers.setAndClone(HeaderRequestID, id)
	c.log.DebugOp("GenerateRequestID", "Generated request id",
		logger.Fields(logger.FieldHeaderLog, headerLog{Name: HeaderRequestID, Value: id}))
	return id, snapshot
}

// UserAgent renders the three product tokens sent by a client called name.
func UserAgent(name, contact, website string) string {
	return strings.Join([]string{
		escapeDataString(name) + "/" + ProductVersion,
		"Contact/" + escapeDataString(contact),
		"Website/" + escapeDataString(website),
	}, " ")
}

// escapeDataString percent-encodes everything outside the RFC 3986 unreserved set.
func escapeDataString(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
