// Package service contains the business logic for the fulfillment service.
package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/metrics"
)

// ttlEntry is one cached plan with its expiry.
type ttlEntry struct {
	key       string
	value     model.ParcelPlan
	expiresAt time.Time
}

// ttlCache is an LRU cache with per-entry TTL for parcel plans.
// Safe for concurrent use.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // front = most recently used

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64

	stopOnce sync.Once
	stopCh   chan struct{}
}

// newTTLCache creates a TTL cache with the given capacity and TTL.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}

	go c.janitor()
	return c
}

// Get retrieves a cached plan if present and not expired.
func (c *ttlCache) Get(key string) (model.ParcelPlan, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return model.ParcelPlan{}, false
	}

	entry := elem.Value.(*ttlEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeLocked(elem)
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return model.ParcelPlan{}, false
	}

	c.order.MoveToFront(elem)
	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a plan, evicting the least recently used entry when full.
func (c *ttlCache) Set(key string, value model.ParcelPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*ttlEntry)
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		if back := c.order.Back(); back != nil {
			c.removeLocked(back)
			c.evictions.Add(1)
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}

	elem := c.order.PushFront(&ttlEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.entries[key] = elem
	metrics.UpdateCacheMetrics(c.order.Len(), c.capacity)
}

// Invalidate drops a single entry.
func (c *ttlCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.removeLocked(elem)
		metrics.RecordCacheOperation("invalidate", "removed")
	}
}

// Clear drops all entries.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop terminates the background janitor.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// removeLocked removes an element. Caller must hold the lock.
func (c *ttlCache) removeLocked(elem *list.Element) {
	entry := elem.Value.(*ttlEntry)
	delete(c.entries, entry.key)
	c.order.Remove(elem)
	metrics.UpdateCacheMetrics(c.order.Len(), c.capacity)
}

// janitor periodically removes expired entries.
func (c *ttlCache) janitor() {
	interval := c.ttl
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

// removeExpired drops all expired entries.
func (c *ttlCache) removeExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if entry := elem.Value.(*ttlEntry); now.After(entry.expiresAt) {
			c.removeLocked(elem)
			c.evictions.Add(1)
		}
		elem = prev
	}
}
