package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	apperrors "github.com/felsokning/codeninjas/errors"
	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/observability"
	"github.com/felsokning/codeninjas/util"
)

// Client is a pre-configured HTTP client shared by one API wrapper. It pins
// the protocol version, owns the default headers, and tags every request
// with the instance correlation id and a fresh request id.
type Client struct {
	name          string
	config        Config
	protocol      Protocol
	policy        VersionPolicy
	httpClient    *http.Client
	headers       *Headers
	logger        *logger.Logger
	log           *logger.Logger
	metrics       *observability.Metrics
	correlationID string
	closed        atomic.Bool
}

// Option configures a Client.
type Option func(*options)

type options struct {
	config    Config
	logger    *logger.Logger
	transport http.RoundTripper
	metrics   *observability.Metrics
}

// WithConfig replaces the client configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.config = cfg }
}

// WithLogger enables logging. The logger is scoped to the client name.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTransport replaces the protocol transport, mostly for tests.
// The version policy still applies to its responses.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithMetrics records request metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a client pinned to HTTP/2 or higher.
func New(name string, opts ...Option) (*Client, error) {
	return newClient(name, HTTP2, opts...)
}

// NewLegacy creates a client pinned to HTTP/1.1 or higher.
func NewLegacy(name string, opts ...Option) (*Client, error) {
	return newClient(name, HTTP11, opts...)
}

func newClient(name string, protocol Protocol, opts ...Option) (*Client, error) {
	if name == "" {
		return nil, fmt.Errorf("httpclient: name is required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := o.transport
	if rt == nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		rt = newTransport(protocol, tlsCfg)
	}

	c := &Client{
		name:     name,
		config:   cfg,
		protocol: protocol,
		policy:   RequestVersionOrHigher,
		httpClient: &http.Client{
			Transport: &versionGuard{next: rt, protocol: protocol},
			Timeout:   cfg.Timeout,
		},
		headers: newHeaders(),
		log:     logger.Nop(),
		metrics: o.metrics,
	}
	if o.logger != nil {
		c.logger = o.logger.WithComponent(name)
		c.log = c.logger
	}

	c.headers.Set(HeaderAccept, MediaTypeJSON)
	c.headers.Set(HeaderUserAgent, UserAgent(name, cfg.Contact, cfg.Website))

	c.log.Initialized()
	c.correlationID = util.NewID()
	c.AddHeader(HeaderCorrelationID, c.correlationID)

	return c, nil
}

// Name returns the label the client was created with.
func (c *Client) Name() string { return c.name }

// Protocol returns the pinned protocol version.
func (c *Client) Protocol() Protocol { return c.protocol }

// VersionPolicy returns the policy applied to negotiated versions.
func (c *Client) VersionPolicy() VersionPolicy { return c.policy }

// CorrelationID returns the id attached to every request of this instance.
func (c *Client) CorrelationID() string { return c.correlationID }

// Logger returns the scoped logger, or nil when the client was built without one.
func (c *Client) Logger() *logger.Logger { return c.logger }

// Log returns the scoped logger, or a no-op logger when none was supplied.
func (c *Client) Log() *logger.Logger { return c.log }

// Close clears the default headers and releases idle connections.
// Calling Close more than once is a no-op.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.headers.Clear()
	c.httpClient.CloseIdleConnections()
	c.log.DebugOp("Close", "Released client")
	return nil
}

// Closed reports whether Close has been called.
func (c *Client) Closed() bool { return c.closed.Load() }

// CheckHealth reports the client as down once it has been closed. It never
// contacts the upstream API.
func (c *Client) CheckHealth(_ context.Context) observability.Health {
	h := observability.Health{
		Name:    c.name,
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"protocol": c.protocol.String()},
	}
	if c.Closed() {
		h.Status = observability.HealthStatusDown
		h.Message = "client closed"
	}
	return h
}

// --- operation naming ---

type operationKey struct{}

// WithOperation names the calling operation in log records and spans for
// requests made with the returned context.
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

func operationFrom(ctx context.Context, fallback string) string {
	if name, ok := ctx.Value(operationKey{}).(string); ok && name != "" {
		return name
	}
	return fallback
}

// --- request execution ---

// response is a fully read 2xx response.
type response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// httpLog is the context object attached to request records.
type httpLog struct {
	Method        string `json:"method"`
	URL           string `json:"url"`
	RequestID     string `json:"request_id"`
	CorrelationID string `json:"correlation_id"`
	Body          string `json:"body,omitempty"`
	StatusCode    int    `json:"status_code,omitempty"`
	Content       string `json:"content,omitempty"`
}

// do sends one request and returns its 2xx response. Every other outcome is
// a *StatusError, except failures to build the request.
func (c *Client) do(ctx context.Context, fallbackOp, method, rawURL string, content *Content) (resp *response, err error) {
	if c.closed.Load() {
		return nil, apperrors.InvalidOperation(fmt.Sprintf("%s has been closed", c.name))
	}
	operation := operationFrom(ctx, fallbackOp)

	requestID, header := c.nextRequest()
	entry := httpLog{Method: method, URL: rawURL, RequestID: requestID, CorrelationID: c.correlationID}

	var body io.Reader
	if content != nil {
		entry.Body = content.Body
		body = strings.NewReader(content.Body)
		header.Set(HeaderContentType, content.mediaType())
	}

	c.log.InfoOp(operation, fmt.Sprintf("Requesting data from '%s'", rawURL), logger.Fields(logger.FieldHTTPLog, entry))

	ctx, call := observability.StartCall(ctx, observability.CallInfo{
		Client:        c.name,
		Operation:     operation,
		Method:        method,
		URL:           rawURL,
		RequestID:     requestID,
		CorrelationID: c.correlationID,
	}, c.metrics)
	defer func() { call.End(ctx, err) }()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}
	req.Header = header

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		se := newTransportError(method, rawURL, 0, err)
		c.log.ErrorOp(operation, se.Message, se.Err, logger.Fields(logger.FieldHTTPLog, entry))
		return nil, se
	}
	defer func() { _ = httpResp.Body.Close() }()

	entry.StatusCode = httpResp.StatusCode
	call.SetStatus(httpResp.StatusCode)
	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		se := newTransportError(method, rawURL, httpResp.StatusCode, err)
		c.log.ErrorOp(operation, se.Message, se.Err, logger.Fields(logger.FieldHTTPLog, entry))
		return nil, se
	}
	entry.Content = string(data)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		se := newStatusError(method, rawURL, httpResp, string(data))
		c.log.ErrorOp(operation, se.Message, nil, logger.Fields(logger.FieldHTTPLog, entry))
		return nil, se
	}

	c.log.InfoOp(operation, fmt.Sprintf("Received %d from '%s'", httpResp.StatusCode, rawURL),
		logger.Fields(logger.FieldHTTPLog, entry))

	return &response{
		StatusCode: httpResp.StatusCode,
		Headers:    flattenHeaders(httpResp.Header),
		Body:       data,
	}, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
