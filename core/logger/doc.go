// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human friendly console
// encoding (the default for the CLI) and a JSON encoding for batch jobs whose
// output is collected by a log shipper.
//
// # Run Correlation
//
// Every invocation of the tool tags its logger with a run_id (a random UUID)
// through WithRunID, so warnings raised while scanning a large export can be
// traced back to a single run even when several runs share a log file.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// Colored level names are only emitted when stderr is a terminal.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log)
//	log.Info("Export started")
package logger
