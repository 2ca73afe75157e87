package lrumap_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-toolbelt/lrumap"
)

func TestCache_Views(t *testing.T) {
	t.Run("keys", func(t *testing.T) {
		c := lrumap.New[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		keys := slices.Collect(c.Keys())
		slices.Sort(keys)
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("values", func(t *testing.T) {
		c := lrumap.New[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		values := slices.Collect(c.Values())
		slices.Sort(values)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("entries", func(t *testing.T) {
		c := lrumap.New[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		entries := maps.Collect(c.Entries())
		assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, entries)
	})

	t.Run("views reflect eviction", func(t *testing.T) {
		c := lrumap.New[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)
		c.Get("a")
		c.Put("d", 4) // evicts "b"

		keys := slices.Collect(c.Keys())
		slices.Sort(keys)
		assert.Equal(t, []string{"a", "c", "d"}, keys)
	})

	t.Run("iteration is not a recency touch", func(t *testing.T) {
		c := lrumap.New[string, int](3)

		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("c", 3)

		for range c.Entries() {
		}

		// "a" remains the oldest touched entry.
		c.Put("d", 4)
		assert.False(t, c.Has("a"))
	})

	t.Run("early break", func(t *testing.T) {
		c := lrumap.New[int, int](10)

		for i := range 10 {
			c.Put(i, i)
		}

		seen := 0
		for range c.Keys() {
			seen++
			if seen == 3 {
				break
			}
		}
		assert.Equal(t, 3, seen)
	})

	t.Run("empty cache yields nothing", func(t *testing.T) {
		c := lrumap.New[string, int](3)

		assert.Empty(t, slices.Collect(c.Keys()))
		assert.Empty(t, slices.Collect(c.Values()))
	})
}
