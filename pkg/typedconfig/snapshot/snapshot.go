package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig"
	"github.com/randalmurphal/typedconfig/pkg/typedconfig/config"
)

// Version is the current snapshot format version.
// Increment when making breaking changes to the encoding.
const Version = 1

// Source is a store that can enumerate its keys and expose its whole tree.
// config.Config and koanfstore.Store both satisfy it.
type Source interface {
	typedconfig.Store
	Keys() []string
	Raw() map[string]any
}

// Snapshot is a point-in-time copy of a store's values.
// Values maps each key to its raw value; it is itself usable as a Store.
type Snapshot struct {
	Version   int
	ID        string
	Name      string
	Timestamp time.Time
	Values    map[string]any
}

// New creates a snapshot of values with a fresh ID.
func New(name string, values map[string]any) *Snapshot {
	if values == nil {
		values = make(map[string]any)
	}
	return &Snapshot{
		Version:   Version,
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now().UTC(),
		Values:    values,
	}
}

// Capture copies the whole tree of src into a new snapshot, so parent keys
// that hold mappings resolve the same way they do on src.
// Nested maps and sequences are copied; later changes to src are not seen.
func Capture(name string, src Source) *Snapshot {
	raw := src.Raw()
	values := make(map[string]any, len(raw))
	for k, v := range raw {
		values[k] = copyTree(v)
	}
	return New(name, values)
}

func copyTree(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, item := range x {
			m[k] = copyTree(item)
		}
		return m
	case []any:
		l := make([]any, len(x))
		for i, item := range x {
			l[i] = copyTree(item)
		}
		return l
	default:
		return v
	}
}

// Config returns the snapshot's values as a config store.
func (s *Snapshot) Config() config.Config {
	return config.New(s.Values)
}

// Lookup implements typedconfig.Store.
func (s *Snapshot) Lookup(key string) (any, bool) {
	return s.Config().Lookup(key)
}

// Keys returns the snapshot's leaf keys, sorted.
func (s *Snapshot) Keys() []string {
	return s.Config().Keys()
}

// document is the persisted form of a Snapshot.
type document struct {
	Version   int                  `json:"version"`
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Timestamp time.Time            `json:"timestamp"`
	Values    map[string]wireValue `json:"values"`
}

// Marshal serializes a snapshot to JSON.
// Returns ErrUnsupportedValue if any value has no portable encoding.
func (s *Snapshot) Marshal() ([]byte, error) {
	values := make(map[string]wireValue, len(s.Values))
	for k, v := range s.Values {
		w, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		values[k] = w
	}

	return json.Marshal(document{
		Version:   s.Version,
		ID:        s.ID,
		Name:      s.Name,
		Timestamp: s.Timestamp,
		Values:    values,
	})
}

// Unmarshal deserializes a snapshot from JSON.
func Unmarshal(data []byte) (*Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, doc.Version, Version)
	}

	values := make(map[string]any, len(doc.Values))
	for k, w := range doc.Values {
		v, err := decodeValue(w)
		if err != nil {
			return nil, fmt.Errorf("decode %q: %w", k, err)
		}
		values[k] = v
	}

	return &Snapshot{
		Version:   doc.Version,
		ID:        doc.ID,
		Name:      doc.Name,
		Timestamp: doc.Timestamp,
		Values:    values,
	}, nil
}
