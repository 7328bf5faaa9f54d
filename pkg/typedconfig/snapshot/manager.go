package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/observability"
)

// Manager encodes snapshots and persists them to a Store, reporting each
// operation through the observability hooks.
type Manager struct {
	store   Store
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for save and load records. Nil disables logging.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics sets the recorder for snapshot sizes.
// Default: observability.NoopMetrics{}
func WithMetrics(recorder observability.MetricsRecorder) ManagerOption {
	return func(m *Manager) {
		if recorder != nil {
			m.metrics = recorder
		}
	}
}

// WithSpanManager sets the span manager for snapshot traces.
// Default: observability.NoopSpanManager{}
func WithSpanManager(spans observability.SpanManager) ManagerOption {
	return func(m *Manager) {
		if spans != nil {
			m.spans = spans
		}
	}
}

// NewManager creates a Manager over store. The store is not closed by the Manager.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:   store,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save encodes and stores snap.
func (m *Manager) Save(ctx context.Context, snap *Snapshot) (err error) {
	ctx, span := m.spans.StartSnapshotSpan(ctx, "save", snap.ID)
	defer func() { m.spans.EndSpanWithError(span, err) }()

	data, err := snap.Marshal()
	if err != nil {
		observability.LogSnapshotError(m.logger, "save", snap.ID, err)
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	m.spans.AddSpanEvent(ctx, "snapshot.encoded",
		attribute.Int("snapshot.keys", len(snap.Values)),
		attribute.Int("snapshot.bytes", len(data)),
	)

	if err := m.store.Save(snap.ID, snap.Name, data); err != nil {
		observability.LogSnapshotError(m.logger, "save", snap.ID, err)
		return err
	}

	m.metrics.RecordSnapshot(ctx, "save", int64(len(data)))
	observability.LogSnapshot(m.logger, "save", snap.ID, len(data))
	return nil
}

// Load fetches and decodes the snapshot with id.
// Returns ErrNotFound if it doesn't exist.
func (m *Manager) Load(ctx context.Context, id string) (snap *Snapshot, err error) {
	ctx, span := m.spans.StartSnapshotSpan(ctx, "load", id)
	defer func() { m.spans.EndSpanWithError(span, err) }()

	data, err := m.store.Load(id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			observability.LogSnapshotError(m.logger, "load", id, err)
		}
		return nil, err
	}

	snap, err = Unmarshal(data)
	if err != nil {
		observability.LogSnapshotError(m.logger, "load", id, err)
		return nil, err
	}
	m.spans.AddSpanEvent(ctx, "snapshot.decoded", attribute.Int("snapshot.keys", len(snap.Values)))

	m.metrics.RecordSnapshot(ctx, "load", int64(len(data)))
	observability.LogSnapshot(m.logger, "load", id, len(data))
	return snap, nil
}

// List returns metadata for all stored snapshots, oldest first.
func (m *Manager) List(ctx context.Context) ([]Info, error) {
	_, span := m.spans.StartSnapshotSpan(ctx, "list", "")
	infos, err := m.store.List()
	m.spans.EndSpanWithError(span, err)
	return infos, err
}

// Latest loads the most recently saved snapshot with the given name.
// An empty name matches any snapshot.
func (m *Manager) Latest(ctx context.Context, name string) (*Snapshot, error) {
	infos, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(infos) - 1; i >= 0; i-- {
		if name == "" || infos[i].Name == name {
			return m.Load(ctx, infos[i].ID)
		}
	}
	return nil, ErrNotFound
}

// Delete removes the snapshot with id.
func (m *Manager) Delete(ctx context.Context, id string) error {
	_, span := m.spans.StartSnapshotSpan(ctx, "delete", id)
	err := m.store.Delete(id)
	m.spans.EndSpanWithError(span, err)
	if err == nil {
		observability.LogSnapshot(m.logger, "delete", id, 0)
	}
	return err
}
