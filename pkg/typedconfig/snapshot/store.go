// Package snapshot persists configuration snapshots so a store's contents can
// be reopened later with every value's kind intact.
package snapshot

import (
	"errors"
	"time"
)

// Store persists encoded snapshots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores an encoded snapshot under id.
	// Overwrites if a snapshot with id already exists.
	Save(id, name string, data []byte) error

	// Load retrieves an encoded snapshot.
	// Returns ErrNotFound if the snapshot doesn't exist.
	Load(id string) ([]byte, error)

	// List returns metadata for all snapshots, ordered by sequence.
	// Returns empty slice (not error) if there are none.
	List() ([]Info, error)

	// Delete removes a snapshot.
	// Returns nil if the snapshot doesn't exist.
	Delete(id string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides metadata without loading the snapshot.
type Info struct {
	ID        string
	Name      string
	Sequence  int
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for snapshot operations.
var (
	// ErrNotFound indicates a snapshot doesn't exist.
	ErrNotFound = errors.New("snapshot not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("snapshot store closed")

	// ErrUnsupportedValue indicates a value with no portable encoding,
	// such as a pointer, channel, or file handle.
	ErrUnsupportedValue = errors.New("unsupported snapshot value")

	// ErrVersionMismatch indicates an encoded snapshot from an unknown format version.
	ErrVersionMismatch = errors.New("snapshot version mismatch")
)
