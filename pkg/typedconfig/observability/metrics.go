package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Lookup outcomes reported to loggers and metrics.
const (
	// OutcomeValue means the stored value was returned.
	OutcomeValue = "value"
	// OutcomeDefault means the key was absent or null and the default was returned.
	OutcomeDefault = "default"
	// OutcomeAbsent means an optional lookup found nothing and had no default.
	OutcomeAbsent = "absent"
	// OutcomeMissing means a mandatory lookup found nothing and had no default.
	OutcomeMissing = "missing"
	// OutcomeInvalid means the stored value had the wrong type.
	OutcomeInvalid = "invalid"
)

// MetricsRecorder records typedconfig metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLookup records a single typed lookup with its outcome and duration.
	RecordLookup(ctx context.Context, kind, outcome string, duration time.Duration, err error)

	// RecordSnapshot records a snapshot operation ("save", "load") and its size.
	RecordSnapshot(ctx context.Context, op string, sizeBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	lookups       metric.Int64Counter
	lookupErrors  metric.Int64Counter
	lookupLatency metric.Float64Histogram
	snapshotSize  metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("typedconfig")

	lookups, err := meter.Int64Counter("typedconfig.lookups",
		metric.WithDescription("Number of typed configuration lookups"),
	)
	if err != nil {
		return nil, err
	}

	lookupErrors, err := meter.Int64Counter("typedconfig.lookup.errors",
		metric.WithDescription("Number of typed lookups that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	lookupLatency, err := meter.Float64Histogram("typedconfig.lookup.latency_ms",
		metric.WithDescription("Typed lookup latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	snapshotSize, err := meter.Int64Histogram("typedconfig.snapshot.size_bytes",
		metric.WithDescription("Encoded snapshot size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		lookups:       lookups,
		lookupErrors:  lookupErrors,
		lookupLatency: lookupLatency,
		snapshotSize:  snapshotSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordLookup records a typed lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, kind, outcome string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	}

	m.lookups.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.lookupLatency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))

	if err != nil {
		m.lookupErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordSnapshot records a snapshot operation.
func (m *otelMetrics) RecordSnapshot(ctx context.Context, op string, sizeBytes int64) {
	m.snapshotSize.Record(ctx, sizeBytes, metric.WithAttributes(
		attribute.String("operation", op),
	))
}
