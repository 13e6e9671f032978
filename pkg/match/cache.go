package match

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// similarityCache is a bounded LRU over computed pairwise similarities.
// Keys are the unordered pair of compared strings, so (a, b) and (b, a)
// share an entry. The cache is purely an optimization: a racing
// duplicate computation writes the same deterministic value, so
// last-writer-wins is harmless.
type similarityCache struct {
	lru       *lru.Cache[string, float64]
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

func newSimilarityCache(size int) *similarityCache {
	c := &similarityCache{}
	// NewWithEvict only fails for non-positive sizes, which withDefaults
	// already rules out.
	cache, err := lru.NewWithEvict(size, func(string, float64) {
		c.evictions.Add(1)
	})
	if err != nil {
		panic("match: invalid similarity cache size")
	}
	c.lru = cache
	return c
}

// pairKey builds the unordered cache key for two strings. A NUL
// separator keeps ("ab","c") distinct from ("a","bc").
func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

// similarity returns the cached ratio for the pair, computing and
// inserting it on a miss.
func (c *similarityCache) similarity(a, b string) float64 {
	key := pairKey(a, b)
	if score, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return score
	}

	c.misses.Add(1)
	score := Similarity(a, b)
	c.lru.Add(key, score)
	return score
}

func (c *similarityCache) purge() {
	c.lru.Purge()
}

func (c *similarityCache) stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.lru.Len(),
	}
}
