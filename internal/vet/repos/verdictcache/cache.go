// Package verdictcache provides an LRU-backed screener.VerdictCache.
// Screening a handle is pure given a rule list, so verdicts never expire;
// the cache only bounds memory.
package verdictcache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/quietmint/handlevet/internal/vet/domain"
	"github.com/quietmint/handlevet/internal/vet/services/screener"
)

// verdictCache is an LRU-backed implementation of screener.VerdictCache.
// It tracks basic metrics: hits, misses, and evictions.
type verdictCache struct {
	lru       *lru.Cache[string, domain.Verdict]
	hits      uint64
	misses    uint64
	evictions uint64
}

// disabledCache is a no-op VerdictCache used when size <= 0.
type disabledCache struct{}

// New creates a new VerdictCache with the given capacity. If size <= 0, a
// disabled no-op cache is returned that always misses and tracks no metrics.
func New(size int) (screener.VerdictCache, error) {
	if size <= 0 {
		return &disabledCache{}, nil
	}

	var vc verdictCache
	// Use NewWithEvict to observe evictions, including Purge-induced ones.
	cache, err := lru.NewWithEvict(size, func(_ string, _ domain.Verdict) {
		atomic.AddUint64(&vc.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	vc.lru = cache
	return &vc, nil
}

// Get looks up a verdict by handle. When found, increments hits; otherwise increments misses.
func (c *verdictCache) Get(handle string) (domain.Verdict, bool) {
	if val, ok := c.lru.Get(handle); ok {
		atomic.AddUint64(&c.hits, 1)
		return val, true
	}
	atomic.AddUint64(&c.misses, 1)
	var zero domain.Verdict
	return zero, false
}

// Put stores a verdict by handle.
func (c *verdictCache) Put(handle string, v domain.Verdict) {
	c.lru.Add(handle, v)
}

// Len returns the number of entries in the cache.
func (c *verdictCache) Len() int { return c.lru.Len() }

// Purge clears all entries. Evictions are counted via the eviction callback.
func (c *verdictCache) Purge() { c.lru.Purge() }

// Stats returns cumulative hit/miss/eviction counters.
func (c *verdictCache) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}

// disabledCache implementation

func (d *disabledCache) Get(string) (domain.Verdict, bool) {
	var zero domain.Verdict
	return zero, false
}

func (d *disabledCache) Put(string, domain.Verdict) {}

func (d *disabledCache) Len() int { return 0 }

func (d *disabledCache) Purge() {}

func (d *disabledCache) Stats() (uint64, uint64, uint64) { return 0, 0, 0 }

var _ screener.VerdictCache = (*verdictCache)(nil)
var _ screener.VerdictCache = (*disabledCache)(nil)
