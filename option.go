package lrumap

type config[K comparable, V any] struct {
	onEvict func(K, V)
	eq      func(V, V) bool
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		eq: func(a, b V) bool { return any(a) == any(b) },
	}
}

// Option configures a Cache at construction.
type Option[K comparable, V any] func(*config[K, V])

// WithOnEvict sets a callback invoked once per capacity eviction and
// once per entry dropped by Clear, with the key and the value current
// at the moment of removal. The callback runs synchronously on the
// goroutine that triggered the removal, after the entry is detached,
// with no cache lock held. It must not call back into the same cache.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}

// WithValueEquality sets the predicate used by CompareAndSwap and
// CompareAndDelete. The default compares dynamic values with == and,
// like sync.Map, requires the values involved to be comparable.
func WithValueEquality[K comparable, V any](eq func(a, b V) bool) Option[K, V] {
	return func(c *config[K, V]) {
		if eq != nil {
			c.eq = eq
		}
	}
}
