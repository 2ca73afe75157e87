package lrumap

import "iter"

// Keys returns a read-only, weakly consistent iterator over the keys.
// Iteration order is unspecified and is not recency order. Concurrent
// mutation of the cache is tolerated; entries added or removed during
// iteration may or may not be observed. Iterating is not a recency
// touch.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		c.index.Range(func(k, v any) bool {
			n := v.(*node[K, V])
			c.mu.Lock()
			alive := !n.dead
			c.mu.Unlock()
			if !alive {
				return true
			}
			return yield(k.(K))
		})
	}
}

// Values returns a read-only, weakly consistent iterator over the
// values, with the same guarantees as Keys.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		c.index.Range(func(_, v any) bool {
			n := v.(*node[K, V])
			c.mu.Lock()
			if n.dead {
				c.mu.Unlock()
				return true
			}
			val := n.value
			c.mu.Unlock()
			return yield(val)
		})
	}
}

// Entries returns a read-only, weakly consistent iterator over
// key/value pairs, with the same guarantees as Keys.
func (c *Cache[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c.index.Range(func(k, v any) bool {
			n := v.(*node[K, V])
			c.mu.Lock()
			if n.dead {
				c.mu.Unlock()
				return true
			}
			val := n.value
			c.mu.Unlock()
			return yield(k.(K), val)
		})
	}
}
