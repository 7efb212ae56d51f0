// Package memo keeps results of earlier computations keyed by a structural
// hash. It never evicts single entries: once more than Threshold lookups have
// been made since the last flush, the whole cache is dropped.
package memo

import (
	"io"
	"log"
	"sync"
)

const Threshold = 100

var Logger = log.New(io.Discard, "", 0)

// Cache is not safe for concurrent use; see Locked.
type Cache[V any] struct {
	entries  map[uint64]V
	accesses int
}

func New[V any]() *Cache[V] {
	return &Cache[V]{entries: map[uint64]V{}}
}

// Get counts as an access even when it misses. The access that crosses the
// threshold flushes the cache and therefore always misses.
func (c *Cache[V]) Get(key uint64) (V, bool) {
	c.accesses++
	if c.accesses > Threshold {
		Logger.Printf("memo: flushing %d entries after %d accesses", len(c.entries), c.accesses-1)
		c.Clear()
	}
	value, ok := c.entries[key]
	return value, ok
}

func (c *Cache[V]) Put(key uint64, value V) {
	if c.entries == nil {
		c.entries = map[uint64]V{}
	}
	c.entries[key] = value
}

func (c *Cache[V]) Clear() {
	clear(c.entries)
	c.accesses = 0
}

func (c *Cache[V]) Len() int {
	return len(c.entries)
}

// Accesses returns the number of Get calls since the last flush.
func (c *Cache[V]) Accesses() int {
	return c.accesses
}

// Locked guards a cache with one mutex so that the lookup, the threshold
// check and the flush happen as a unit.
type Locked[V any] struct {
	mu    sync.Mutex
	cache *Cache[V]
}

func NewLocked[V any]() *Locked[V] {
	return &Locked[V]{cache: New[V]()}
}

func (l *Locked[V]) Get(key uint64) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Get(key)
}

func (l *Locked[V]) Put(key uint64, value V) {
	l.mu.Lock()
	l.cache.Put(key, value)
	l.mu.Unlock()
}

func (l *Locked[V]) Clear() {
	l.mu.Lock()
	l.cache.Clear()
	l.mu.Unlock()
}

func (l *Locked[V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}
