package benchmarks

import (
	"context"
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/snapshot"
)

// BenchmarkMemoryStore_Save measures in-memory snapshot save.
func BenchmarkMemoryStore_Save(b *testing.B) {
	store := snapshot.NewMemoryStore()
	data := mustMarshal(b, createLargeSnapshot())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Save("snap-1", "bench", data)
	}
}

// BenchmarkMemoryStore_Load measures in-memory snapshot load.
func BenchmarkMemoryStore_Load(b *testing.B) {
	store := snapshot.NewMemoryStore()
	_ = store.Save("snap-1", "bench", mustMarshal(b, createLargeSnapshot()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Load("snap-1")
	}
}

// BenchmarkSQLiteStore_Save measures SQLite snapshot save.
func BenchmarkSQLiteStore_Save(b *testing.B) {
	store, cleanup := createSQLiteStore(b)
	defer cleanup()

	data := mustMarshal(b, createLargeSnapshot())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = store.Save(fmt.Sprintf("snap-%d", i%100), "bench", data)
	}
}

// BenchmarkSQLiteStore_Load measures SQLite snapshot load.
func BenchmarkSQLiteStore_Load(b *testing.B) {
	store, cleanup := createSQLiteStore(b)
	defer cleanup()

	_ = store.Save("snap-1", "bench", mustMarshal(b, createLargeSnapshot()))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Load("snap-1")
	}
}

// BenchmarkManager_SaveLoad measures a full encode, save, load, decode cycle.
func BenchmarkManager_SaveLoad(b *testing.B) {
	m := snapshot.NewManager(snapshot.NewMemoryStore())
	snap := createLargeSnapshot()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Save(ctx, snap)
		_, _ = m.Load(ctx, snap.ID)
	}
}

// BenchmarkSnapshotMarshal measures tagged encoding overhead.
func BenchmarkSnapshotMarshal(b *testing.B) {
	snap := createLargeSnapshot()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = snap.Marshal()
	}
}

// BenchmarkSnapshotUnmarshal measures tagged decoding overhead.
func BenchmarkSnapshotUnmarshal(b *testing.B) {
	data := mustMarshal(b, createLargeSnapshot())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = snapshot.Unmarshal(data)
	}
}

// Helper functions

func createLargeSnapshot() *snapshot.Snapshot {
	values := map[string]any{
		"service.ratio": math.Inf(1),
		"service.tags":  []any{"a", "b", "c"},
		"service.meta": map[string]any{
			"owner": "platform",
			"tier":  1,
		},
	}
	for i := 0; i < 100; i++ {
		values[fmt.Sprintf("key.%d.int", i)] = i
		values[fmt.Sprintf("key.%d.float", i)] = float64(i) / 3
		values[fmt.Sprintf("key.%d.string", i)] = fmt.Sprintf("value-%d", i)
		values[fmt.Sprintf("key.%d.bool", i)] = i%2 == 0
	}
	return snapshot.New("bench", values)
}

func mustMarshal(b *testing.B, snap *snapshot.Snapshot) []byte {
	b.Helper()
	data, err := snap.Marshal()
	if err != nil {
		b.Fatal(err)
	}
	return data
}

func createSQLiteStore(b *testing.B) (*snapshot.SQLiteStore, func()) {
	b.Helper()
	tmpFile, err := os.CreateTemp("", "bench-*.db")
	if err != nil {
		b.Fatal(err)
	}
	tmpFile.Close()

	store, err := snapshot.NewSQLiteStore(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		b.Fatal(err)
	}

	return store, func() {
		store.Close()
		os.Remove(tmpFile.Name())
	}
}
