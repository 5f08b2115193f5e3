package web

import "sync"

type cacheEntry struct {
	hash uint64
	data []byte
}

// cache is a fixed-size ring of recently sent frames, keyed by
// hash. Repeated frames are replayed to clients by index instead
// of being retransmitted.
type cache struct {
	entries []cacheEntry
	idx     int
	sync.Mutex
}

func newCache(size int) *cache {
	return &cache{
		entries: make([]cacheEntry, size),
	}
}

// index returns the position of the entry with the given hash, or
// -1 if the cache does not hold it.
func (c *cache) index(hash uint64) int {
	for i, e := range c.entries {
		if e.hash == hash && len(e.data) > 0 {
			return i
		}
	}

	return -1
}

// add stores the data under the given hash, evicting the oldest
// entry.
func (c *cache) add(hash uint64, data []byte) int {
	c.entries[c.idx] = cacheEntry{hash: hash, data: data}
	i := c.idx
	c.idx = (c.idx + 1) % len(c.entries)
	return i
}
