package render

import (
	"sync"
	"sync/atomic"
)

// Cache memoizes converted render objects keyed by entity handle.
// It is safe for concurrent use; hit and miss counters are atomic so
// Stats never contends with conversions.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Object

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Object)}
}

// Get returns the cached object for a handle.
func (c *Cache) Get(handle string) (*Object, bool) {
	c.mu.RLock()
	obj, ok := c.entries[handle]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return obj, true
}

// Put stores a converted object under a handle. Nil objects are not
// cached; nothing-to-draw is cheap to recompute.
func (c *Cache) Put(handle string, obj *Object) {
	if obj == nil || handle == "" {
		return
	}
	c.mu.Lock()
	c.entries[handle] = obj
	c.mu.Unlock()
}

// Invalidate drops one handle's entry.
func (c *Cache) Invalidate(handle string) {
	c.mu.Lock()
	delete(c.entries, handle)
	c.mu.Unlock()
}

// InvalidateAll clears the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]*Object)
	c.mu.Unlock()
}

// CacheStats is a point-in-time snapshot of cache effectiveness.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Stats returns current cache statistics.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	entries := len(c.entries)
	c.mu.RUnlock()

	return CacheStats{
		Entries: entries,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
