package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/typedconfig/pkg/typedconfig/snapshot"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) snapshot.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		data := []byte(`{"key": "value"}`)
		require.NoError(t, store.Save("snap-1", "app", data))

		loaded, err := store.Load("snap-1")
		require.NoError(t, err)
		assert.Equal(t, data, loaded)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Load("snap-nonexistent")
		assert.ErrorIs(t, err, snapshot.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("snap-1", "app", []byte("first")))
		require.NoError(t, store.Save("snap-1", "app", []byte("second")))

		loaded, err := store.Load("snap-1")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), loaded)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		infos, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("snap-a", "app", []byte("a")))
		require.NoError(t, store.Save("snap-b", "app", []byte("bb")))
		require.NoError(t, store.Save("snap-c", "other", []byte("ccc")))

		infos, err := store.List()
		require.NoError(t, err)
		require.Len(t, infos, 3)

		assert.Equal(t, 1, infos[0].Sequence)
		assert.Equal(t, 2, infos[1].Sequence)
		assert.Equal(t, 3, infos[2].Sequence)

		assert.Equal(t, "snap-a", infos[0].ID)
		assert.Equal(t, "snap-b", infos[1].ID)
		assert.Equal(t, "snap-c", infos[2].ID)
		assert.Equal(t, "other", infos[2].Name)

		assert.Equal(t, int64(1), infos[0].Size)
		assert.Equal(t, int64(2), infos[1].Size)
		assert.Equal(t, int64(3), infos[2].Size)
		assert.False(t, infos[0].Timestamp.IsZero())
	})

	t.Run(name+"/Sequence_On_Update", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("snap-a", "app", []byte("first")))
		require.NoError(t, store.Save("snap-b", "app", []byte("second")))
		require.NoError(t, store.Save("snap-a", "app", []byte("updated")))

		infos, err := store.List()
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "snap-b", infos[0].ID)
		assert.Equal(t, 2, infos[0].Sequence)
		assert.Equal(t, "snap-a", infos[1].ID)
		assert.Equal(t, 3, infos[1].Sequence)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("snap-1", "app", []byte("data")))
		require.NoError(t, store.Delete("snap-1"))

		_, err := store.Load("snap-1")
		assert.ErrorIs(t, err, snapshot.ErrNotFound)
	})

	t.Run(name+"/Delete_Nonexistent", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		assert.NoError(t, store.Delete("snap-nonexistent"))
	})

	t.Run(name+"/DataCopy", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		original := []byte("original data")
		require.NoError(t, store.Save("snap-1", "app", original))

		original[0] = 'X'

		loaded, err := store.Load("snap-1")
		require.NoError(t, err)
		assert.Equal(t, []byte("original data"), loaded)
	})

	t.Run(name+"/Close_ThenError", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())

		err := store.Save("snap-1", "app", []byte("data"))
		assert.ErrorIs(t, err, snapshot.ErrStoreClosed)

		_, err = store.Load("snap-1")
		assert.ErrorIs(t, err, snapshot.ErrStoreClosed)

		_, err = store.List()
		assert.ErrorIs(t, err, snapshot.ErrStoreClosed)

		assert.ErrorIs(t, store.Delete("snap-1"), snapshot.ErrStoreClosed)
	})
}

// TestMemoryStore runs contract tests against MemoryStore.
func TestMemoryStore(t *testing.T) {
	factory := func(t *testing.T) snapshot.Store {
		return snapshot.NewMemoryStore()
	}
	storeContractTest(t, "MemoryStore", factory)
}

// TestSQLiteStore runs contract tests against SQLiteStore.
func TestSQLiteStore(t *testing.T) {
	factory := func(t *testing.T) snapshot.Store {
		store, err := snapshot.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return store
	}
	storeContractTest(t, "SQLiteStore", factory)
}

func TestMemoryStore_Len(t *testing.T) {
	store := snapshot.NewMemoryStore()
	defer store.Close()

	require.NoError(t, store.Save("a", "app", []byte("1")))
	require.NoError(t, store.Save("b", "app", []byte("2")))
	require.NoError(t, store.Save("a", "app", []byte("3")))
	assert.Equal(t, 2, store.Len())
}
