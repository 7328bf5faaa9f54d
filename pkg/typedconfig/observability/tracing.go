package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("typedconfig")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartLookupSpan starts a span for a single typed lookup.
	StartLookupSpan(ctx context.Context, key, kind string) (context.Context, trace.Span)

	// StartSnapshotSpan starts a span for a snapshot operation.
	StartSnapshotSpan(ctx context.Context, op, snapshotID string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartLookupSpan starts a span for a typed lookup.
func (m *otelSpanManager) StartLookupSpan(ctx context.Context, key, kind string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "typedconfig.lookup",
		trace.WithAttributes(
			attribute.String("config.key", key),
			attribute.String("config.kind", kind),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartSnapshotSpan starts a span for a snapshot operation.
func (m *otelSpanManager) StartSnapshotSpan(ctx context.Context, op, snapshotID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "typedconfig.snapshot."+op,
		trace.WithAttributes(
			attribute.String("snapshot.id", snapshotID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
