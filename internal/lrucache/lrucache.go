// Package lrucache provides a small LRU map with optional TTL expiry. The
// order list is intrusive: entries live in an arena and link to each other by
// index, so eviction and promotion never allocate.
package lrucache

import "time"

const noIndex = -1

type entry[K comparable, V any] struct {
	key      K
	value    V
	storedAt time.Time
	prev     int // arena index, noIndex at the head
	next     int // arena index, noIndex at the tail
}

type Cache[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
	free    []int // reusable arena slots

	head int // most recently used
	tail int // least recently used

	maxEntries int
	ttl        time.Duration // 0 = no expiry

	now func() time.Time
}

// New returns a cache holding at most maxEntries values. A non-zero ttl makes
// entries expire that long after they were stored, regardless of use.
func New[K comparable, V any](maxEntries int, ttl time.Duration) *Cache[K, V] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache[K, V]{
		index:      make(map[K]int, maxEntries),
		head:       noIndex,
		tail:       noIndex,
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (c *Cache[K, V]) Len() int { return len(c.index) }

// Set stores the value, evicting the least recently used entry if the cache
// is full. Storing an existing key refreshes its value and timestamp.
func (c *Cache[K, V]) Set(key K, value V) {
	if i, ok := c.index[key]; ok {
		c.entries[i].value = value
		c.entries[i].storedAt = c.now()
		c.moveToFront(i)
		return
	}

	if len(c.index) >= c.maxEntries {
		c.evict(c.tail)
	}

	i := c.allocate(entry[K, V]{
		key:      key,
		value:    value,
		storedAt: c.now(),
		prev:     noIndex,
		next:     c.head,
	})
	if c.head != noIndex {
		c.entries[c.head].prev = i
	}
	c.head = i
	if c.tail == noIndex {
		c.tail = i
	}
	c.index[key] = i
}

// Get returns the value and promotes the entry. Expired entries are evicted
// on access and reported as missing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	i, ok := c.index[key]
	if !ok {
		return zero, false
	}
	if c.ttl > 0 && c.now().Sub(c.entries[i].storedAt) > c.ttl {
		c.evict(i)
		return zero, false
	}
	c.moveToFront(i)
	return c.entries[i].value, true
}

func (c *Cache[K, V]) Delete(key K) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.evict(i)
	return true
}

// Resize changes the capacity, evicting least recently used entries if the
// cache shrank below its current size.
func (c *Cache[K, V]) Resize(maxEntries int) {
	if maxEntries < 1 {
		maxEntries = 1
	}
	c.maxEntries = maxEntries
	for len(c.index) > c.maxEntries {
		c.evict(c.tail)
	}
}

func (c *Cache[K, V]) allocate(e entry[K, V]) int {
	if n := len(c.free); n > 0 {
		i := c.free[n-1]
		c.free = c.free[:n-1]
		c.entries[i] = e
		return i
	}
	c.entries = append(c.entries, e)
	return len(c.entries) - 1
}

func (c *Cache[K, V]) unlink(i int) {
	e := c.entries[i]
	if e.prev != noIndex {
		c.entries[e.prev].next = e.next
	} else {
		c.head = e.next
	}
	if e.next != noIndex {
		c.entries[e.next].prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *Cache[K, V]) moveToFront(i int) {
	if c.head == i {
		return
	}
	c.unlink(i)
	c.entries[i].prev = noIndex
	c.entries[i].next = c.head
	if c.head != noIndex {
		c.entries[c.head].prev = i
	}
	c.head = i
	if c.tail == noIndex {
		c.tail = i
	}
}

func (c *Cache[K, V]) evict(i int) {
	c.unlink(i)
	delete(c.index, c.entries[i].key)
	var zero entry[K, V]
	c.entries[i] = zero
	c.entries[i].prev = noIndex
	c.entries[i].next = noIndex
	c.free = append(c.free, i)
}
