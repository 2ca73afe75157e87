// Package lrumap provides a generic, bounded, thread-safe map with
// least-recently-used eviction and an eviction notification callback.
//
// The cache holds at most the number of entries fixed at construction.
// When an insert would exceed that capacity, the entry that has gone
// longest without being read or written is evicted and, if a callback
// is registered, reported to it exactly once.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - Full associative-map surface: Get, Put, PutIfAbsent, Replace,
//     CompareAndSwap, Remove, CompareAndDelete, Has, Len
//   - Strict LRU eviction with a synchronous, exactly-once callback
//   - Lock-free concurrent index for point lookups; one short mutex
//     scoped to recency-list pointer manipulation
//   - Read-only, weakly consistent iterators over keys, values and
//     entries
//   - Lock-free hit/miss/eviction statistics
//
// # Usage
//
// Create a cache with a fixed capacity:
//
//	c := lrumap.New[string, []byte](256)
//
//	c.Put("fragment:nav", navHTML)
//	if out, ok := c.Get("fragment:nav"); ok {
//		// out is the cached rendering; the entry is now most
//		// recently used.
//		_ = out
//	}
//
// Register an eviction callback for cleanup of displaced entries:
//
//	c := lrumap.New[string, *os.File](16,
//		lrumap.WithOnEvict(func(name string, f *os.File) {
//			f.Close()
//		}),
//	)
//
// # Recency Semantics
//
// An entry is touched, and therefore promoted to most recently used,
// by a successful Get, Put, Replace, or CompareAndSwap, and by the
// inserting half of PutIfAbsent. Has is a pure lookup and PutIfAbsent
// on a present key is a pure read; neither promotes. Iteration never
// promotes.
//
// # Thread Safety
//
// Any number of goroutines may call any operation concurrently. Point
// lookups hit a concurrent index without taking the list lock, so
// misses on different keys never contend. Recency reordering, inserts
// and evictions serialize on a single mutex held only across pointer
// manipulation, which bounds capacity exactly: the cache never exceeds
// its capacity at the completion of an operation, and each
// over-capacity insert evicts exactly one entry.
//
// Because the index and the recency list are updated in two separate
// critical sections rather than one transaction, the two structures
// can disagree for a bounded moment under contention, and the choice
// among near-simultaneously-oldest entries is unspecified. The
// eviction callback runs on the inserting goroutine after the entry
// has been fully detached from both structures; it can never observe
// the evicted key as still present. The callback must be fast and must
// not call back into the same cache. A panic in the callback is
// contained and does not propagate into the writer.
//
// # Iteration
//
// Keys, Values and Entries return iter.Seq / iter.Seq2 views backed
// directly by the index. They are read-only by construction, weakly
// consistent under concurrent mutation, and yield entries in
// unspecified order.
//
// # Explicit Removal
//
// Remove, CompareAndDelete and Clear detach entries without involving
// the eviction policy; Remove and CompareAndDelete never invoke the
// eviction callback. Clear invokes it once per dropped entry so that
// held resources can be released, but those drops do not count toward
// the eviction statistic.
package lrumap
