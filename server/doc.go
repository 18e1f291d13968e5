// Package server is the HTTP facade over the API wrappers.
//
// A Server wraps a Gin engine in the middleware chain (recovery, request id,
// CORS, request logging) and serves it over HTTP/1.1 and cleartext HTTP/2:
//
//	srv := server.New(cfg.Server, log)
//	srv.Engine().GET("/health", endpoint.Health("codeninjas", checkers...))
//	gateway.New(sources, log).Register(srv.Engine())
//	err := srv.Run(ctx)
//
// Handlers answer with RespondOK or RespondList on success and
// RespondWithError on failure, which renders errors.AppError values.
package server
