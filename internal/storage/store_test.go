package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "counters.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)

	value, err := store.GetInt(ctx, "calculationCount")
	require.NoError(t, err)
	assert.Equal(t, int64(0), value)

	require.NoError(t, store.SetInt(ctx, "calculationCount", 41))
	require.NoError(t, store.SetInt(ctx, "calculationCount", 42))
	value, err = store.GetInt(ctx, "calculationCount")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
	require.NoError(t, store.Close())

	// Reopening runs migrations again and keeps the data.
	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	value, err = reopened.GetInt(ctx, "calculationCount")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
}

func TestSQLiteStoreCancelledContext(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "counters.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, store.SetInt(ctx, "k", 1))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	var store CounterStore = NewMemoryStore()

	value, err := store.GetInt(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), value)

	require.NoError(t, store.SetInt(ctx, "k", 7))
	value, err = store.GetInt(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(7), value)
	assert.NoError(t, store.Close())
}
