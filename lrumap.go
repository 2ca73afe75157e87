package lrumap

import (
	"sync"
)

// Cache is a bounded, thread-safe map with least-recently-used eviction.
//
// Lookups go through a lock-free concurrent index; recency bookkeeping
// and capacity enforcement happen under a single short-lived mutex that
// guards only the intrusive recency list. The two structures are
// deliberately not updated as one transaction: under heavy contention
// the index and the list can disagree for a bounded moment, but the
// capacity bound holds at the completion of every operation and each
// over-capacity insert evicts exactly one entry.
type Cache[K comparable, V any] struct {
	capacity int
	index    sync.Map // K -> *node[K, V]

	mu   sync.Mutex // guards list links, node.value, node.dead, size
	head *node[K, V]
	tail *node[K, V]
	size int

	onEvict func(K, V)
	eq      func(V, V) bool
	stats   Stats
}

// New creates a cache holding at most capacity entries.
// It panics if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	if capacity < 1 {
		panic("lrumap: capacity must be positive")
	}

	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		onEvict:  cfg.onEvict,
		eq:       cfg.eq,
	}
	c.initList()
	return c
}

// Get returns the value stored for key and marks the entry as most
// recently used. Returns the zero value and false on a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.index.Load(key)
	if !ok {
		c.stats.miss()
		var zero V
		return zero, false
	}

	n := v.(*node[K, V])
	c.mu.Lock()
	if n.dead {
		c.mu.Unlock()
		c.stats.miss()
		var zero V
		return zero, false
	}
	val := n.value
	c.moveToFront(n)
	c.mu.Unlock()

	c.stats.hit()
	return val, true
}

// Put stores value under key and marks the entry as most recently used.
// Returns the previous value and true if the key was already present.
// Inserting a new key into a full cache evicts the least recently used
// entry and reports it to the eviction callback.
func (c *Cache[K, V]) Put(key K, value V) (V, bool) {
	n := &node[K, V]{key: key, value: value}
	for {
		existing, loaded := c.index.LoadOrStore(key, n)
		if !loaded {
			c.insert(n)
			var zero V
			return zero, false
		}

		old := existing.(*node[K, V])
		c.mu.Lock()
		if old.dead {
			// Lost a race to eviction or removal; drop the stale
			// mapping and insert fresh.
			c.mu.Unlock()
			c.index.CompareAndDelete(key, existing)
			continue
		}
		prev := old.value
		old.value = value
		c.moveToFront(old)
		c.mu.Unlock()
		return prev, true
	}
}

// PutIfAbsent stores value only if key is not already present. On a hit
// it returns the current value and true without touching recency order;
// on an insert it returns the zero value and false, marks the new entry
// most recently used, and may evict.
func (c *Cache[K, V]) PutIfAbsent(key K, value V) (V, bool) {
	n := &node[K, V]{key: key, value: value}
	for {
		existing, loaded := c.index.LoadOrStore(key, n)
		if !loaded {
			c.insert(n)
			var zero V
			return zero, false
		}

		old := existing.(*node[K, V])
		c.mu.Lock()
		if old.dead {
			c.mu.Unlock()
			c.index.CompareAndDelete(key, existing)
			continue
		}
		val := old.value
		c.mu.Unlock()
		return val, true
	}
}

// Replace stores value only if key is already present, marking the
// entry as most recently used. Returns the previous value and true on
// success, the zero value and false otherwise.
func (c *Cache[K, V]) Replace(key K, value V) (V, bool) {
	var zero V
	v, ok := c.index.Load(key)
	if !ok {
		return zero, false
	}

	n := v.(*node[K, V])
	c.mu.Lock()
	if n.dead {
		c.mu.Unlock()
		return zero, false
	}
	prev := n.value
	n.value = value
	c.moveToFront(n)
	c.mu.Unlock()
	return prev, true
}

// CompareAndSwap replaces the value for key with new only if the
// current value equals old, marking the entry as most recently used on
// success. Equality defaults to == on the dynamic values; see
// WithValueEquality for non-comparable value types.
func (c *Cache[K, V]) CompareAndSwap(key K, old, new V) bool {
	v, ok := c.index.Load(key)
	if !ok {
		return false
	}

	n := v.(*node[K, V])
	c.mu.Lock()
	if n.dead || !c.eq(n.value, old) {
		c.mu.Unlock()
		return false
	}
	n.value = new
	c.moveToFront(n)
	c.mu.Unlock()
	return true
}

// Remove deletes key and returns the value it held. The eviction
// callback is never invoked for an explicit removal.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	var zero V
	v, ok := c.index.LoadAndDelete(key)
	if !ok {
		return zero, false
	}

	n := v.(*node[K, V])
	c.mu.Lock()
	if n.dead {
		// Concurrently evicted; the callback already fired for it.
		c.mu.Unlock()
		return zero, false
	}
	val := n.value
	if n.prev != nil {
		c.unlink(n)
		c.size--
	}
	n.dead = true
	c.mu.Unlock()
	return val, true
}

// CompareAndDelete deletes key only if its current value equals old,
// reporting whether an entry was removed. Like Remove, it never invokes
// the eviction callback.
func (c *Cache[K, V]) CompareAndDelete(key K, old V) bool {
	v, ok := c.index.Load(key)
	if !ok {
		return false
	}

	n := v.(*node[K, V])
	c.mu.Lock()
	if n.dead || !c.eq(n.value, old) {
		c.mu.Unlock()
		return false
	}
	if n.prev != nil {
		c.unlink(n)
		c.size--
	}
	n.dead = true
	c.mu.Unlock()

	c.index.CompareAndDelete(key, v)
	return true
}

// Has reports whether key is present. It is a pure lookup: the entry is
// not promoted and no statistics are recorded.
func (c *Cache[K, V]) Has(key K) bool {
	v, ok := c.index.Load(key)
	if !ok {
		return false
	}

	n := v.(*node[K, V])
	c.mu.Lock()
	alive := !n.dead
	c.mu.Unlock()
	return alive
}

// Len returns the number of entries currently held.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Cap returns the capacity fixed at construction.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Clear removes every entry, invoking the eviction callback for each.
// Entries dropped by Clear do not count toward the eviction statistic.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	victims := make([]*node[K, V], 0, c.size)
	for n := c.head.next; n != c.tail; n = n.next {
		n.dead = true
		victims = append(victims, n)
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	c.size = 0
	c.mu.Unlock()

	for _, n := range victims {
		c.index.CompareAndDelete(n.key, n)
		c.callEvict(n.key, n.value)
	}
}

// Stats returns a point-in-time copy of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.Snapshot()
}

// insert links a freshly published node at the front of the recency
// list and enforces the capacity bound. The victim, if any, is detached
// from both structures before the eviction callback runs.
func (c *Cache[K, V]) insert(n *node[K, V]) {
	c.mu.Lock()
	if n.dead {
		// Removed between index publication and linking; it was never
		// counted, so there is nothing to undo.
		c.mu.Unlock()
		return
	}
	c.pushFront(n)
	c.size++
	var victim *node[K, V]
	if c.size > c.capacity {
		if victim = c.popTail(); victim != nil {
			victim.dead = true
			c.size--
		}
	}
	c.mu.Unlock()

	if victim != nil {
		c.index.CompareAndDelete(victim.key, victim)
		c.stats.evict()
		c.callEvict(victim.key, victim.value)
	}
}

// callEvict hands an entry to the eviction callback. A panicking
// callback must not propagate into the writer that triggered it.
func (c *Cache[K, V]) callEvict(key K, value V) {
	if c.onEvict == nil {
		return
	}
	defer func() { _ = recover() }()
	c.onEvict(key, value)
}
