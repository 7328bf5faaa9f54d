package snapshot_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/snapshot"
)

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := snapshot.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store1.Save("snap-1", "app", []byte("persistent")))
	require.NoError(t, store1.Close())

	// Reopen the database
	store2, err := snapshot.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	data, err := store2.Load("snap-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("persistent"), data)
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := snapshot.NewSQLiteStore("/nonexistent/path/db.sqlite")
	assert.Error(t, err)
}

func TestSQLiteStore_CloseIdempotent(t *testing.T) {
	store, err := snapshot.NewSQLiteStore(":memory:")
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_Concurrent(t *testing.T) {
	store, err := snapshot.NewSQLiteStore(filepath.Join(t.TempDir(), "concurrent.db"))
	require.NoError(t, err)
	defer store.Close()

	const numGoroutines = 20
	const numOps = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()

			for j := 0; j < numOps; j++ {
				snapID := fmt.Sprintf("snap-%d-%d", id, j%5)
				switch j % 3 {
				case 0:
					assert.NoError(t, store.Save(snapID, "app", []byte("data")))
				case 1:
					_, _ = store.Load(snapID)
				case 2:
					_, err := store.List()
					assert.NoError(t, err)
				}
			}
		}(i)
	}

	wg.Wait()

	infos, err := store.List()
	require.NoError(t, err)
	assert.Len(t, infos, numGoroutines*5)
}
