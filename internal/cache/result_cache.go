// Package cache memoizes aggregation results keyed by canonical query
// descriptor and dataset version. It only ever changes latency:
// disabling it must not change any query result.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
)

// entry is one cached result. Payload slices are treated as immutable
// after Put; the lock protects eviction metadata only.
type entry struct {
	key       string
	rows      []models.AggregateRow
	expiresAt time.Time
}

// ResultCache is a bounded LRU with per-entry TTL and a dataset
// version guard: a version bump invalidates everything at once.
type ResultCache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	version    int64
	order      *list.List // front = most recently used
	items      map[string]*list.Element

	hits   int64
	misses int64

	// now is swappable for TTL tests.
	now func() time.Time
}

// NewResultCache creates a cache holding at most maxEntries results,
// each valid for ttl. maxEntries < 1 disables storage entirely.
func NewResultCache(maxEntries int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		order:      list.New(),
		items:      make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get returns the cached rows for a descriptor at a dataset version.
// A version change purges the whole cache before lookup.
func (c *ResultCache) Get(desc models.QueryDescriptor, version int64) ([]models.AggregateRow, bool) {
	if c == nil {
		return nil, false
	}
	key := desc.CanonicalKey()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.checkVersionLocked(version) {
		c.misses++
		return nil, false
	}

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}
	e := el.Value.(*entry)
	if c.now().After(e.expiresAt) {
		c.removeLocked(el)
		c.misses++
		return nil, false
	}
	c.order.MoveToFront(el)
	c.hits++
	return e.rows, true
}

// Put stores rows for a descriptor at a dataset version, evicting the
// least recently used entry when full.
func (c *ResultCache) Put(desc models.QueryDescriptor, version int64, rows []models.AggregateRow) {
	if c == nil || c.maxEntries < 1 {
		return
	}
	key := desc.CanonicalKey()

	c.mu.Lock()
	defer c.mu.Unlock()

	// A query that read the version just before a refresh must not
	// purge entries stored at the newer version.
	if !c.checkVersionLocked(version) {
		return
	}

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.rows = rows
		e.expiresAt = c.now().Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.maxEntries {
		c.removeLocked(c.order.Back())
	}

	el := c.order.PushFront(&entry{
		key:       key,
		rows:      rows,
		expiresAt: c.now().Add(c.ttl),
	})
	c.items[key] = el
}

// Purge drops every entry.
func (c *ResultCache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[string]*list.Element)
}

// Len returns the current entry count.
func (c *ResultCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns cumulative hit and miss counts.
func (c *ResultCache) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// checkVersionLocked invalidates everything when the dataset version
// advances and reports whether the caller's version is current.
// Versions older than the recorded one are ignored, never adopted.
// Comparing one integer keeps refresh invalidation cheap.
func (c *ResultCache) checkVersionLocked(version int64) bool {
	if version == c.version {
		return true
	}
	if version < c.version {
		return false
	}
	c.version = version
	c.order.Init()
	c.items = make(map[string]*list.Element)
	return true
}

func (c *ResultCache) removeLocked(el *list.Element) {
	if el == nil {
		return
	}
	e := el.Value.(*entry)
	c.order.Remove(el)
	delete(c.items, e.key)
}
