// Package observability provides structured logging, metrics, and tracing
// for typedconfig lookups and snapshot operations.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds store context to a logger.
// Returns a new logger with the store name attached to every record.
//
// Example:
//
//	enriched := EnrichLogger(logger, "app.yaml")
//	enriched.Debug("loading") // includes store
func EnrichLogger(logger *slog.Logger, store string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("store", store))
}

// LogLookup logs a resolved lookup. Source is one of the Outcome constants
// describing where the returned value came from.
func LogLookup(logger *slog.Logger, key, kind, source string) {
	if logger == nil {
		return
	}
	logger.Debug("config value resolved",
		slog.String("key", key),
		slog.String("kind", kind),
		slog.String("source", source),
	)
}

// LogLookupError logs a rejected lookup.
func LogLookupError(logger *slog.Logger, key, kind string, err error) {
	if logger == nil {
		return
	}
	logger.Debug("config value rejected",
		slog.String("key", key),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
}

// LogSnapshot logs a snapshot save or load.
func LogSnapshot(logger *slog.Logger, op, snapshotID string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Info("config snapshot "+op,
		slog.String("snapshot_id", snapshotID),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogSnapshotError logs snapshot failure.
func LogSnapshotError(logger *slog.Logger, op, snapshotID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("config snapshot failed",
		slog.String("snapshot_id", snapshotID),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
