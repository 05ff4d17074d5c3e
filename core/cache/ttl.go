// Package cache provides thread-safe caching primitives with generic type
// parameters for compile-time type safety.
//
// TTL holds a single value with a validity window, suitable for reference
// data that is cheap to reload but pointless to reload per request:
//
//	countries := cache.NewTTL[[]Country](time.Hour)
//
//	if list, ok := countries.Get(); ok {
//		return list, nil
//	}
//	list, err := loadFromDisk()
//	if err != nil {
//		return nil, err
//	}
//	countries.Set(list)
package cache

import (
	"sync"
	"time"
)

// TTL is a single-value cache with a fixed validity window. The zero
// value is not usable; create instances with NewTTL.
type TTL[V any] struct {
	mu       sync.RWMutex
	value    V
	storedAt time.Time
	ttl      time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewTTL creates a TTL cache with the given validity window. A
// non-positive ttl means entries never expire until Invalidate is called.
func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{ttl: ttl, now: time.Now}
}

// Get returns the cached value and whether it is still valid.
func (c *TTL[V]) Get() (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	if c.storedAt.IsZero() {
		return zero, false
	}
	if c.ttl > 0 && c.now().Sub(c.storedAt) >= c.ttl {
		return zero, false
	}
	return c.value, true
}

// Set stores a value and restarts the validity window.
func (c *TTL[V]) Set(value V) {
	c.mu.Lock()
	c.value = value
	c.storedAt = c.now()
	c.mu.Unlock()
}

// Invalidate discards the cached value immediately.
func (c *TTL[V]) Invalidate() {
	c.mu.Lock()
	var zero V
	c.value = zero
	c.storedAt = time.Time{}
	c.mu.Unlock()
}

// SetClock replaces the time source. Intended for tests.
func (c *TTL[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}
