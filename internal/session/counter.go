package session

import (
	"context"
	"sync"
	"time"

	"github.com/iwvelando/perspective-retraites/internal/storage"
	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"go.uber.org/zap"
)

// persistTimeout bounds a single counter write.
const persistTimeout = 2 * time.Second

// Counter is the process-wide number of calculations. Increments are cheap
// and in-memory; the value is written to the store once no increment has
// happened for the debounce delay, and on Flush/Close. Store failures are
// logged and otherwise ignored: they never reach the calculation.
type Counter struct {
	mu      sync.Mutex
	writeMu sync.Mutex
	value   int64
	timer   *time.Timer

	store  storage.CounterStore
	key    string
	delay  time.Duration
	logger *zap.Logger
}

// NewCounter returns a counter persisted to store under
// constants.CalculationCountKey. A nil store keeps the counter in memory.
func NewCounter(logger *zap.Logger, store storage.CounterStore, delay time.Duration) *Counter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delay <= 0 {
		delay = constants.DefaultPersistDelayMillis * time.Millisecond
	}
	return &Counter{
		store:  store,
		key:    constants.CalculationCountKey,
		delay:  delay,
		logger: logger,
	}
}

// Load reads the persisted value. Read failures leave the counter at zero.
func (c *Counter) Load(ctx context.Context) int64 {
	if c.store == nil {
		return c.Value()
	}

	value, err := c.store.GetInt(ctx, c.key)
	if err != nil {
		c.logger.Debug("failed to load calculation count",
			zap.String("op", "session.Counter.Load"),
			zap.Error(err),
		)
		return c.Value()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	return c.value
}

// Value returns the current count.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment adds one calculation and schedules a write.
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value++
	if c.store != nil {
		if c.timer != nil {
			c.timer.Stop()
		}
		c.timer = time.AfterFunc(c.delay, c.persist)
	}
	return c.value
}

// Flush cancels any pending write and persists the value now.
func (c *Counter) Flush() {
	c.mu.Lock()
	pending := c.timer != nil
	if pending {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	if pending {
		c.persist()
	}
}

// Close flushes the counter. The underlying store is owned by the caller.
func (c *Counter) Close() {
	c.Flush()
}

func (c *Counter) persist() {
	if c.store == nil {
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	value := c.value
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := c.store.SetInt(ctx, c.key, value); err != nil {
		c.logger.Debug("failed to persist calculation count",
			zap.String("op", "session.Counter.persist"),
			zap.Int64("count", value),
			zap.Error(err),
		)
	}
}
