package lrumap

// node is a cache entry threaded onto the intrusive recency list.
//
// key is immutable after construction. value, prev, next and dead are
// guarded by Cache.mu. A node with prev == nil is not on the list yet:
// it has been published to the index by LoadOrStore but its insert has
// not reached the lock. dead marks a node that has been unlinked (or
// abandoned before linking) so that every path re-validates liveness
// after acquiring the lock.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
	dead  bool
}

// initList sets up the circular sentinel pair. Must be called once,
// before the cache is shared.
func (c *Cache[K, V]) initList() {
	c.head = &node[K, V]{}
	c.tail = &node[K, V]{}
	c.head.next = c.tail
	c.tail.prev = c.head
}

// pushFront links n as the most recently used node.
// Must be called with c.mu held.
func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	first := c.head.next
	c.head.next = n
	n.prev = c.head
	n.next = first
	first.prev = n
}

// moveToFront promotes a linked node to most recently used. A node that
// has not been linked yet is left alone; its pending insert will place
// it at the front anyway. Must be called with c.mu held.
func (c *Cache[K, V]) moveToFront(n *node[K, V]) {
	if n.prev == nil || c.head.next == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

// unlink removes a linked node from the list.
// Must be called with c.mu held.
func (c *Cache[K, V]) unlink(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

// popTail unlinks and returns the least recently used node, or nil if
// the list is empty. Must be called with c.mu held.
func (c *Cache[K, V]) popTail() *node[K, V] {
	last := c.tail.prev
	if last == c.head {
		return nil
	}
	c.unlink(last)
	return last
}
