// Package observability provides OpenTelemetry tracing and metrics for the
// outbound API clients, plus the health report served by the HTTP facade.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("codeninjas"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("codeninjas"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("codeninjas"))
//	client, err := httpclient.New("HackerNews", httpclient.WithMetrics(metrics))
//
// Every request made through httpclient is a Call: a client span plus request
// metrics when configured.
package observability
