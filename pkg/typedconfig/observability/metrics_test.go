package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest creates a test meter provider and returns a function to restore the global one.
func setupMetricsTest(t *testing.T) (*sdkmetric.ManualReader, func()) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	cleanup := func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	}

	return reader, cleanup
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumFor returns the summed counter value for datapoints carrying attribute key=value.
func sumFor(t *testing.T, m *metricdata.Metrics, key, value string) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")

	var total int64
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			total += dp.Value
		}
	}
	return total
}

func TestNewMetricsRecorder(t *testing.T) {
	_, cleanup := setupMetricsTest(t)
	defer cleanup()

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)

	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordLookup(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("records lookup count by outcome", func(t *testing.T) {
		m.RecordLookup(ctx, "int", OutcomeValue, time.Millisecond, nil)
		m.RecordLookup(ctx, "int", OutcomeDefault, time.Millisecond, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "typedconfig.lookups")
		require.NotNil(t, metric)
		assert.GreaterOrEqual(t, sumFor(t, metric, "outcome", OutcomeValue), int64(1))
		assert.GreaterOrEqual(t, sumFor(t, metric, "outcome", OutcomeDefault), int64(1))
	})

	t.Run("records latency", func(t *testing.T) {
		m.RecordLookup(ctx, "string", OutcomeValue, 2*time.Millisecond, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "typedconfig.lookup.latency_ms")
		require.NotNil(t, metric)

		hist, ok := metric.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		assert.NotEmpty(t, hist.DataPoints)
	})

	t.Run("records errors only when present", func(t *testing.T) {
		m.RecordLookup(ctx, "float", OutcomeInvalid, time.Millisecond, errors.New("bad"))
		m.RecordLookup(ctx, "bool", OutcomeValue, time.Millisecond, nil)

		rm := collectMetrics(t, reader)
		metric := findMetric(rm, "typedconfig.lookup.errors")
		require.NotNil(t, metric)
		assert.GreaterOrEqual(t, sumFor(t, metric, "kind", "float"), int64(1))
		assert.Equal(t, int64(0), sumFor(t, metric, "kind", "bool"))
	})
}

func TestRecordSnapshot(t *testing.T) {
	reader, cleanup := setupMetricsTest(t)
	defer cleanup()

	m, err := newOtelMetrics()
	require.NoError(t, err)

	m.RecordSnapshot(context.Background(), "save", 2048)

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "typedconfig.snapshot.size_bytes")
	require.NotNil(t, metric)

	hist, ok := metric.Data.(metricdata.Histogram[int64])
	require.True(t, ok, "Expected Histogram type")
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, int64(2048), hist.DataPoints[0].Sum)
}
