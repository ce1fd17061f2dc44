// Package log provides structured protocol logging for the terminal.
//
// It defines the Logger interface and Event types for capturing events
// at every layer of the command pipeline (line assembly, dispatch,
// device operations, recognition polls). It is separate from
// operational logging (slog) - protocol capture provides a complete
// machine-readable event trace for debugging a serial session.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	logger, _ := log.NewFileLogger("session.vlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with integer-keyed events. Reader streams
// them back, optionally filtered by session, layer or category.
package log
