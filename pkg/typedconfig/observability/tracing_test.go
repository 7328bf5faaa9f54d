package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	// Update the package-level tracer
	tracer = otel.Tracer("typedconfig")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func spanAttr(attrs []attribute.KeyValue, key string) string {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr.Value.AsString()
		}
	}
	return ""
}

func TestSpanManager_StartLookupSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	_, span := sm.StartLookupSpan(context.Background(), "server.port", "int")
	require.NotNil(t, span)
	sm.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "typedconfig.lookup", spans[0].Name)
	assert.Equal(t, "server.port", spanAttr(spans[0].Attributes, "config.key"))
	assert.Equal(t, "int", spanAttr(spans[0].Attributes, "config.kind"))
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestSpanManager_StartSnapshotSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	_, span := sm.StartSnapshotSpan(context.Background(), "save", "snap-1")
	sm.EndSpanWithError(span, errors.New("disk full"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "typedconfig.snapshot.save", spans[0].Name)
	assert.Equal(t, "snap-1", spanAttr(spans[0].Attributes, "snapshot.id"))
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "disk full", spans[0].Status.Description)
	require.Len(t, spans[0].Events, 1) // RecordError adds an exception event
}

func TestSpanManager_AddSpanEvent(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()
	ctx, span := sm.StartLookupSpan(context.Background(), "k", "string")
	sm.AddSpanEvent(ctx, "default applied", attribute.String("source", OutcomeDefault))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "default applied", spans[0].Events[0].Name)
}

func TestSpanManager_EndNilSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSpanManager().EndSpanWithError(nil, errors.New("x"))
	})
}

func TestSpanManager_AddEventWithoutSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		NewSpanManager().AddSpanEvent(context.Background(), "orphan")
	})
}
