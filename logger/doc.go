// Package logger provides structured logging on top of zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. A component-scoped logger renders operation
// records as "[component.operation]: message" with structured context
// attached as fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "codeninjas").WithComponent("HackerNews")
//	log.InfoOp("GetTopStories", "fetched ids", logger.Fields("count", 42))
//
// Code that may run without a logger uses Nop so no call site needs a nil check.
package logger
