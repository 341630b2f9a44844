package matching

import "sync"

// key identifies one memoized permutation.
type key struct {
	size int
	seed int64
}

// entry holds a lazily-materialized permutation: the first GetMate for a
// given key computes it under once, every subsequent GetMate for the same
// key reads the already-computed slice without blocking on other keys.
type entry struct {
	once sync.Once
	perm []int
}

// Cache memoizes Permutation results per (size, seed), materializing each
// entry at most once even under concurrent access, and never blocking
// lookups of distinct keys behind a single lock - only the cache's own
// entries map is ever held under the shared mutex, and only long enough to
// find-or-insert the entry for one key.
type Cache struct {
	mu      sync.Mutex
	entries map[key]*entry
}

// NewCache builds an empty permutation cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[key]*entry)}
}

// Get returns the permutation for (size, seed), computing and caching it on
// first use.
func (c *Cache) Get(size int, seed int64) []int {
	k := key{size: size, seed: seed}

	c.mu.Lock()
	e, ok := c.entries[k]
	if !ok {
		e = &entry{}
		c.entries[k] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.perm = Permutation(size, seed)
	})
	return e.perm
}

// Clear empties the cache. Called whenever a new sort begins (Initialize /
// UseHashArrayForSorting) so permutations from a previous array never leak
// into the next one.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[key]*entry)
}
