// Package querycache provides memoization for aggregated read queries.
// Draining a paged chain query can take many round trips; when the same
// query is issued repeatedly against state that is not moving, such as
// dry runs and local tooling, caching the combined result avoids
// refetching every page.
package querycache

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

// Cache stores encoded query responses keyed by a hash of the query
// shape.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string][]byte
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// New creates a cache with the specified maximum entry count.
// When the cache is full, an arbitrary entry is evicted.
// Set maxSize to 0 for an unbounded cache.
func New(maxSize int) *Cache {
	return &Cache{
		entries: make(map[string][]byte),
		maxSize: maxSize,
	}
}

// hashKey creates a deterministic hash of the key parts. Parts are
// length-prefixed so ("ab","c") and ("a","bc") hash differently.
func hashKey(parts ...string) string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, p := range parts {
		binary.BigEndian.PutUint64(buf, uint64(len(p)))
		h.Write(buf)
		h.Write([]byte(p))
	}
	return string(h.Sum(nil))
}

// Get retrieves a cached response for the given key parts.
func (c *Cache) Get(parts ...string) ([]byte, bool) {
	key := hashKey(parts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.hits++
		return v, true
	}
	c.misses++
	return nil, false
}

// Put stores a response under the given key parts.
func (c *Cache) Put(value []byte, parts ...string) {
	key := hashKey(parts...)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		for k := range c.entries {
			delete(c.entries, k)
			c.evictions++
			break
		}
	}
	c.entries[key] = value
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
}

// Size returns the current number of cached entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats holds cache statistics.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
