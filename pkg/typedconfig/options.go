package typedconfig

import (
	"log/slog"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/observability"
)

// Option configures an Accessor.
type Option func(*Accessor)

// WithLogger sets the logger used for lookup debug records.
// A nil logger disables logging, which is the default.
//
// Example:
//
//	cfg := typedconfig.New(store, typedconfig.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(a *Accessor) {
		a.logger = logger
	}
}

// WithMetrics sets the recorder for lookup metrics.
// Default: observability.NoopMetrics{}
func WithMetrics(recorder observability.MetricsRecorder) Option {
	return func(a *Accessor) {
		if recorder != nil {
			a.metrics = recorder
		}
	}
}

// WithSpanManager sets the span manager for lookup traces.
// Default: observability.NoopSpanManager{}
func WithSpanManager(spans observability.SpanManager) Option {
	return func(a *Accessor) {
		if spans != nil {
			a.spans = spans
		}
	}
}

// WithObservability enables OTel metrics and tracing on the global providers.
// Equivalent to WithMetrics(observability.NewMetricsRecorder()) plus
// WithSpanManager(observability.NewSpanManager()).
func WithObservability() Option {
	return func(a *Accessor) {
		a.metrics = observability.NewMetricsRecorder()
		a.spans = observability.NewSpanManager()
	}
}
