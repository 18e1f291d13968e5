package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Call outcomes used as the outcome label on metrics and spans.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status"
	OutcomeTransport = "transport"
)

// CallInfo identifies one outbound request.
type CallInfo struct {
	Client        string
	Operation     string
	Method        string
	URL           string
	RequestID     string
	CorrelationID string
}

// Call is an outbound request in flight: an open client span plus the
// metric bookkeeping for it.
type Call struct {
	info    CallInfo
	start   time.Time
	span    trace.Span
	metrics *Metrics
	status  int
}

// StartCall opens a client span for info. metrics may be nil.
func StartCall(ctx context.Context, info CallInfo, metrics *Metrics) (context.Context, *Call) {
	ctx, span := StartSpan(ctx, SpanHTTPClient, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String(AttrClientName, info.Client),
		attribute.String(AttrOperationName, info.Operation),
		attribute.String(AttrHTTPMethod, info.Method),
		attribute.String(AttrHTTPURL, info.URL),
		attribute.String(AttrRequestID, info.RequestID),
		attribute.String(AttrCorrelationID, info.CorrelationID),
	)
	if metrics != nil {
		metrics.RecordRequestStart(ctx)
	}
	return ctx, &Call{info: info, start: time.Now(), span: span, metrics: metrics}
}

// SetStatus records the response status once headers arrived.
func (c *Call) SetStatus(code int) {
	c.status = code
	c.span.SetAttributes(attribute.Int(AttrHTTPStatus, code))
}

// Outcome classifies the call: a failure after a response arrived is a
// status failure, anything earlier is a transport failure.
func (c *Call) Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case c.status != 0:
		return OutcomeStatus
	default:
		return OutcomeTransport
	}
}

// End closes the span and records the request metrics.
func (c *Call) End(ctx context.Context, err error) {
	outcome := c.Outcome(err)
	duration := time.Since(c.start)

	if err != nil {
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
	}
	c.span.SetAttributes(attribute.String(AttrOutcome, outcome))
	c.span.End()

	if c.metrics == nil {
		return
	}
	c.metrics.RecordRequestEnd(ctx, c.info.Client, c.info.Operation, outcome, duration)
	if err != nil {
		c.metrics.RecordError(ctx, outcome, c.info.Client)
	}
}
