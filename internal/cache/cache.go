package cache

import (
	"slices"
	"sync"
)

// Cache maps keys to values and forgets the least recently used quarter of its
// entries once it grows past the soft limit. A limit of 0 never evicts.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	clock     uint64

	hits, misses uint64
}

type entry[V any] struct {
	value V
	used  uint64
}

// New creates an empty cache.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get returns the value stored for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.clock++
	e.used = c.clock
	return e.value, true
}

// Set stores value for key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(key, value)
}

// GetOrCreate returns the value stored for key, calling create under the lock
// on a miss so concurrent callers never build the same value twice.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.hits++
		c.clock++
		e.used = c.clock
		return e.value
	}
	c.misses++
	v := create()
	c.store(key, v)
	return v
}

// Len returns the number of stored entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry and resets the statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.clock, c.hits, c.misses = 0, 0, 0
}

// Stats reports the cache size and hit counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Len: len(c.entries), Capacity: c.softLimit, Hits: c.hits, Misses: c.misses}
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// store inserts under c.mu and evicts when over the limit.
func (c *Cache[K, V]) store(key K, value V) {
	c.clock++
	c.entries[key] = &entry[V]{value: value, used: c.clock}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evict()
	}
}

// evict shrinks the cache to three quarters of the soft limit, oldest first.
func (c *Cache[K, V]) evict() {
	keep := max(c.softLimit*3/4, 1)
	drop := len(c.entries) - keep
	if drop <= 0 {
		return
	}
	type aged struct {
		key  K
		used uint64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.used})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.used < b.used:
			return -1
		case a.used > b.used:
			return 1
		}
		return 0
	})
	for _, a := range all[:drop] {
		delete(c.entries, a.key)
	}
}
