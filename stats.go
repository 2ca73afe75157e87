package lrumap

import "sync/atomic"

// Stats holds cache counters using atomics for lock-free updates.
type Stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func (s *Stats) hit() {
	s.hits.Add(1)
}

func (s *Stats) miss() {
	s.misses.Add(1)
}

func (s *Stats) evict() {
	s.evictions.Add(1)
}

// Snapshot returns a point-in-time copy of the counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
	}
}

// Snapshot is a point-in-time copy of cache statistics. Hits and Misses
// count Get calls only; Evictions counts capacity evictions only.
type Snapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRate returns the hit rate as a value between 0 and 1.
// Returns 0 if there have been no lookups.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
