// ABOUTME: In-memory store with TTL-based expiration for session tables
// ABOUTME: Thread-safe typed store using sync.Map with a stoppable cleanup sweep

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry[V any] struct {
	data      V
	expiresAt time.Time
}

// Cache is a typed key/value store whose entries expire after a TTL
type Cache[V any] struct {
	store    sync.Map
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a cache with the default TTL and starts its cleanup sweep.
// Call Close to stop the sweep.
func New[V any](ttl time.Duration) *Cache[V] {
	return newWithSweep[V](ttl, time.Minute)
}

func newWithSweep[V any](ttl, sweep time.Duration) *Cache[V] {
	c := &Cache[V]{
		ttl:  ttl,
		done: make(chan struct{}),
	}
	go c.startCleanup(sweep)
	return c
}

// TTL returns the default time-to-live of entries
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}

func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return zero, false
	}

	e := val.(entry[V])
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		slog.Debug("Cache expired", "key", key)
		return zero, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.store.Store(key, entry[V]{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	})
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

func (c *Cache[V]) Delete(key string) {
	c.store.Delete(key)
}

// Len counts unexpired entries
func (c *Cache[V]) Len() int {
	now := time.Now()
	n := 0
	c.store.Range(func(_, val any) bool {
		if !now.After(val.(entry[V]).expiresAt) {
			n++
		}
		return true
	})
	return n
}

// Close stops the cleanup sweep. It is safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *Cache[V]) startCleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache[V]) sweep() {
	now := time.Now()
	removed := 0
	c.store.Range(func(key, val any) bool {
		if now.After(val.(entry[V]).expiresAt) {
			c.store.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		slog.Debug("Cache sweep removed expired entries", "count", removed)
	}
}
