package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iwvelando/perspective-retraites/internal/storage"
	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// failingStore rejects every read and write.
type failingStore struct {
	mu     sync.Mutex
	writes int
}

func (f *failingStore) GetInt(context.Context, string) (int64, error) {
	return 0, errors.New("unavailable")
}

func (f *failingStore) SetInt(context.Context, string, int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	return errors.New("unavailable")
}

func (f *failingStore) Close() error { return nil }

func stored(t *testing.T, store storage.CounterStore) int64 {
	t.Helper()
	value, err := store.GetInt(context.Background(), constants.CalculationCountKey)
	require.NoError(t, err)
	return value
}

func TestCounterInMemory(t *testing.T) {
	c := NewCounter(nil, nil, 0)

	assert.Equal(t, int64(0), c.Load(context.Background()))
	assert.Equal(t, int64(1), c.Increment())
	assert.Equal(t, int64(2), c.Increment())
	c.Flush()
	assert.Equal(t, int64(2), c.Value())
}

func TestCounterLoadsPersistedValue(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetInt(context.Background(), constants.CalculationCountKey, 41))

	c := NewCounter(zaptest.NewLogger(t), store, time.Hour)
	assert.Equal(t, int64(41), c.Load(context.Background()))
	assert.Equal(t, int64(42), c.Increment())
}

func TestCounterDebouncesWrites(t *testing.T) {
	store := storage.NewMemoryStore()
	c := NewCounter(zaptest.NewLogger(t), store, 20*time.Millisecond)

	for i := 0; i < 5; i++ {
		c.Increment()
	}
	assert.Equal(t, int64(0), stored(t, store))

	assert.Eventually(t, func() bool {
		return stored(t, store) == 5
	}, time.Second, 5*time.Millisecond)
}

func TestCounterFlushWritesImmediately(t *testing.T) {
	store := storage.NewMemoryStore()
	c := NewCounter(zaptest.NewLogger(t), store, time.Hour)

	c.Increment()
	c.Increment()
	c.Flush()
	assert.Equal(t, int64(2), stored(t, store))

	c.Increment()
	c.Close()
	assert.Equal(t, int64(3), stored(t, store))
}

func TestCounterIgnoresStoreFailures(t *testing.T) {
	store := &failingStore{}
	c := NewCounter(zaptest.NewLogger(t), store, time.Hour)

	assert.Equal(t, int64(0), c.Load(context.Background()))
	assert.Equal(t, int64(1), c.Increment())
	c.Flush()
	assert.Equal(t, int64(1), c.Value())

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, 1, store.writes)
}

func TestCounterFlushWithoutPendingWrite(t *testing.T) {
	store := &failingStore{}
	c := NewCounter(nil, store, time.Hour)

	c.Flush()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Zero(t, store.writes)
}
