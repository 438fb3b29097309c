package gazetteer

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Triple is the (ward, district, province) result of a single Resolve
// call, cached as one unit since all three fields are produced together.
type Triple struct {
	Ward     string
	District string
	Province string
}

// CachedResolver wraps a Resolver with an in-memory LRU cache keyed on
// the raw input string. It holds no persistent or networked state; the
// cache is discarded with the process. Grounded on the teacher's L1
// in-memory layer in its Mongo-backed cache service, minus the
// persistent tier this module has no use for.
type CachedResolver struct {
	resolver *Resolver
	cache    *lru.Cache[string, Triple]
	logger   *zap.Logger

	// hits/misses are read from Stats concurrently with Resolve writes,
	// so they're atomic rather than plain int64s.
	hits, misses atomic.Int64
}

// NewCachedResolver wraps resolver with an LRU cache holding up to size
// entries. logger may be nil, in which case a no-op logger is used.
func NewCachedResolver(resolver *Resolver, size int, logger *zap.Logger) (*CachedResolver, error) {
	c, err := lru.New[string, Triple](size)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedResolver{resolver: resolver, cache: c, logger: logger}, nil
}

// Resolve returns the cached result for input if present, otherwise
// resolves it against the underlying Resolver and caches the outcome
// (including an all-empty miss, so repeated unresolvable input doesn't
// keep paying full resolution cost).
func (c *CachedResolver) Resolve(input string) Triple {
	if t, ok := c.cache.Get(input); ok {
		c.hits.Add(1)
		c.logger.Debug("cache hit", zap.String("input", input))
		return t
	}
	c.misses.Add(1)
	ward, district, province := c.resolver.Resolve(input)
	t := Triple{Ward: ward, District: district, Province: province}
	c.cache.Add(input, t)
	c.logger.Debug("cache miss", zap.String("input", input))
	return t
}

// Stats reports cache hit/miss counters and current occupancy.
func (c *CachedResolver) Stats() (hits, misses int64, len int) {
	return c.hits.Load(), c.misses.Load(), c.cache.Len()
}

// Purge clears every cached entry.
func (c *CachedResolver) Purge() {
	c.cache.Purge()
}
