package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/felsokning/codeninjas/logger"
)

const tracerName = "github.com/felsokning/codeninjas/observability"

// TracerConfig controls span export.
type TracerConfig struct {
	Enabled  bool `yaml:"enabled" mapstructure:"enabled"`
	Exporter `yaml:",inline" mapstructure:",squash"`
	// SampleRate is the fraction of new traces kept, from 0 to 1.
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// DefaultTracerConfig samples every trace and exports to a local collector.
// Export stays disabled until Enabled is set.
func DefaultTracerConfig(serviceName string) TracerConfig {
	return TracerConfig{Exporter: defaultExporter(serviceName), SampleRate: 1.0}
}

// ApplyDefaults fills unset fields from the running service.
func (c *TracerConfig) ApplyDefaults(name, version, environment string) {
	c.fill(name, version, environment)
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}

// InitTracer installs a batching OTLP/HTTP tracer provider and the W3C
// propagators as the otel globals. Callers shut the provider down on exit.
func InitTracer(ctx context.Context, cfg TracerConfig) (*sdktrace.TracerProvider, error) {
	var opts []otlptracehttp.Option
	opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("observability: trace exporter: %w", err)
	}

	res, err := cfg.resource()
	if err != nil {
		return nil, fmt.Errorf("observability: resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(cfg.SampleRate)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("Tracing enabled", logger.Fields(
		logger.FieldService, cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"sample_rate", cfg.SampleRate,
	))
	return tp, nil
}

func sampler(rate float64) sdktrace.Sampler {
	if rate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	if rate <= 0 {
		return sdktrace.NeverSample()
	}
	return sdktrace.TraceIDRatioBased(rate)
}

// StartSpan starts a span on the global provider.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, opts...)
}

// SpanHTTPClient names the span around each outbound request.
const SpanHTTPClient = "http.client.request"

// Attribute keys set on client spans.
const (
	AttrClientName    = "client.name"
	AttrOperationName = "operation.name"
	AttrRequestID     = "request.id"
	AttrCorrelationID = "correlation.id"
	AttrHTTPMethod    = "http.request.method"
	AttrHTTPURL       = "url.full"
	AttrHTTPStatus    = "http.response.status_code"
	AttrOutcome       = "outcome"
)
