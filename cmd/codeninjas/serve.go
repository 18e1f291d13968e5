package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felsokning/codeninjas/apis/deutschewelle"
	"github.com/felsokning/codeninjas/apis/hackernews"
	"github.com/felsokning/codeninjas/apis/smhi"
	"github.com/felsokning/codeninjas/gateway"
	"github.com/felsokning/codeninjas/httpclient"
	"github.com/felsokning/codeninjas/logger"
	"github.com/felsokning/codeninjas/observability"
	"github.com/felsokning/codeninjas/server"
	"github.com/felsokning/codeninjas/server/endpoint"
	"github.com/felsokning/codeninjas/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the API clients as a read-only HTTP facade",
	Long: `Serve exposes the clients over HTTP:

  GET /v1/dw/news?language=English
  GET /v1/smhi/warnings
  GET /v1/hackernews/top?count=10
  GET /v1/hackernews/show?count=10
  GET /health
  GET /version`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "Listen port (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

var serverPort int

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := initTelemetry(ctx, appConfig)
	if err != nil {
		return err
	}
	defer shutdown()

	metrics, err := observability.NewMetrics(observability.Meter(version.Product))
	if err != nil {
		return err
	}

	sources, clients, err := openSources(ctx, clientOptions(metrics))
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range clients {
			_ = c.Close()
		}
	}()

	cfg := appConfig.Server
	if serverPort != 0 {
		cfg.Port = serverPort
	}
	srv := server.New(cfg, log)
	engine := srv.Engine()

	checkers := make([]observability.HealthChecker, 0, len(clients))
	for _, c := range clients {
		checkers = append(checkers, c)
	}
	engine.GET("/health", endpoint.Health(appConfig.Name, checkers...))
	engine.GET("/version", endpoint.Version())
	gateway.New(sources, log).Register(engine)

	return srv.Run(ctx)
}

// openSources creates the API clients. SMHI resolves its warnings reference
// on construction; when that fails the facade still starts and its route
// answers 503.
func openSources(ctx context.Context, opts []httpclient.Option) (gateway.Sources, []*httpclient.Client, error) {
	var (
		sources gateway.Sources
		clients []*httpclient.Client
	)

	news, err := deutschewelle.New(opts...)
	if err != nil {
		return sources, clients, err
	}
	sources.News = news
	clients = append(clients, news.HTTP())

	stories, err := hackernews.New(opts...)
	if err != nil {
		return sources, clients, err
	}
	sources.Stories = stories
	clients = append(clients, stories.HTTP())

	warnings, err := smhi.New(ctx, opts...)
	if err != nil {
		log.ErrorOp("Serve", "SMHI warnings are unavailable", err)
		return sources, clients, nil
	}
	sources.Warnings = warnings
	clients = append(clients, warnings.HTTP())

	return sources, clients, nil
}

// initTelemetry starts the OTLP exporters that are enabled and returns a
// function that flushes them.
func initTelemetry(ctx context.Context, cfg *AppConfig) (func(), error) {
	var shutdowns []func(context.Context) error
	shutdown := func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		for _, fn := range shutdowns {
			if err := fn(flushCtx); err != nil {
				log.Error("Telemetry shutdown failed", logger.ErrorFields("Shutdown", err))
			}
		}
	}

	if cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			return nil, err
		}
		shutdowns = append(shutdowns, tp.Shutdown)
	}
	if cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, cfg.Metrics)
		if err != nil {
			shutdown()
			return nil, err
		}
		shutdowns = append(shutdowns, mp.Shutdown)
	}
	return shutdown, nil
}
