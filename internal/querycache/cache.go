// Package querycache holds the latest known value for each resource query
// and broadcasts writes and invalidations to interested surfaces. It is
// the client-side source of truth the UI reads from; accessors and
// mutation controllers write into it.
package querycache

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/hsiehdog/havenmind-front/internal/events"
)

// Key identifies one resource query.
type Key string

// Canonical query keys.
const (
	KeyUsage     Key = "usage"
	KeyProjects  Key = "projects"
	KeyActivity  Key = "activity"
	KeyChat      Key = "chat"
	KeyDocuments Key = "documents"
)

// Change describes one cache mutation, delivered to subscribers.
type Change struct {
	Key Key
}

type entry struct {
	value any
	stale bool
}

// Cache is a keyed store of last-known values. Invalidation marks a key
// stale but keeps the value: stale-but-valid data is preferred over
// blanking the UI, and the next read decides whether to re-fetch.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	broker  *events.Broker[Change]
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]entry),
		broker:  events.NewBroker[Change](),
	}
}

// Write stores value under key, clearing any stale mark, and notifies
// subscribers.
func (c *Cache) Write(key Key, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value}
	c.mu.Unlock()

	log.Debug("cache write", "key", key)
	c.broker.Publish(events.CacheWritten, Change{Key: key})
}

// Get returns the last-known value for key. ok reports whether any value
// exists; stale reports whether it has been invalidated since it was
// written.
func (c *Cache) Get(key Key) (value any, ok, stale bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	return e.value, true, e.stale
}

// Invalidate marks key stale so the next read triggers a fresh fetch. The
// stored value is left untouched; a failed re-fetch must not blank the
// last-known-good data.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.stale = true
		c.entries[key] = e
	} else {
		c.entries[key] = entry{stale: true}
	}
	c.mu.Unlock()

	log.Debug("cache invalidate", "key", key)
	c.broker.Publish(events.CacheInvalidated, Change{Key: key})
}

// Update applies fn to the current value under key atomically and stores
// the result. When no value exists yet, fn receives the zero value and
// ok=false and may still seed the entry. Subscribers are notified as for
// Write.
func (c *Cache) Update(key Key, fn func(current any, ok bool) any) {
	c.mu.Lock()
	e, ok := c.entries[key]
	e.value = fn(e.value, ok)
	e.stale = false
	c.entries[key] = e
	c.mu.Unlock()

	log.Debug("cache update", "key", key)
	c.broker.Publish(events.CacheWritten, Change{Key: key})
}

// Subscribe returns a channel of cache changes, optionally narrowed to the
// given keys. The subscription ends when ctx is canceled.
func (c *Cache) Subscribe(ctx context.Context, keys ...Key) <-chan events.Event[Change] {
	if len(keys) == 0 {
		return c.broker.Subscribe(ctx)
	}
	keySet := make(map[Key]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}
	return c.broker.Subscribe(ctx, func(ev events.Event[Change]) bool {
		return keySet[ev.Payload.Key]
	})
}

// Close shuts down the underlying broker.
func (c *Cache) Close() {
	c.broker.Shutdown()
}

// ReadSlice returns the cached slice under key, or nil when absent or of
// a different type.
func ReadSlice[T any](c *Cache, key Key) ([]T, bool) {
	value, ok, _ := c.Get(key)
	if !ok {
		return nil, false
	}
	slice, ok := value.([]T)
	return slice, ok
}
