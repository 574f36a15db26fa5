package query

import (
	"context"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"
)

// Key identifies a cached read: the operation name plus the arguments the
// read was parameterized with. Two reads share a cache slot iff their keys
// canonicalize to the same string.
type Key struct {
	Op   string
	Args []string
}

func (k Key) canonical() string {
	if len(k.Args) == 0 {
		return k.Op
	}
	return k.Op + "|" + strings.Join(k.Args, "|")
}

type entry struct {
	data  any
	stale bool
}

// Cache is an in-memory read cache with staleness-based invalidation.
// Invalidation never drops data; it marks the slot stale so the next access
// refetches. Concurrent accesses to the same missing or stale slot are
// collapsed into a single fetch.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group

	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewCache constructs a Cache and registers its counters on reg. A nil reg
// skips registration, which keeps tests independent of the default registry.
func NewCache(reg prometheus.Registerer) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Reads served from a fresh cache slot.",
		}, []string{"op"}),
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Reads that had to fetch, split missing vs stale upstream.",
		}, []string{"op"}),
		invalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "query_cache_invalidations_total",
			Help: "Cache slots marked stale.",
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(c.hits, c.misses, c.invalidations)
	}
	return c
}

// Get returns the cached value for key, fetching it when the slot is missing
// or stale. A fetch error is propagated and the slot keeps its previous
// state, so the next access retries.
func (c *Cache) Get(ctx context.Context, key Key, fetch func(ctx context.Context) (any, error)) (any, error) {
	k := key.canonical()

	c.mu.Lock()
	if e, ok := c.entries[k]; ok && !e.stale {
		c.mu.Unlock()
		c.hits.WithLabelValues(key.Op).Inc()
		return e.data, nil
	}
	c.mu.Unlock()
	c.misses.WithLabelValues(key.Op).Inc()

	data, err, _ := c.group.Do(k, func() (any, error) {
		// Re-check under the group: another caller may have refreshed the
		// slot between the unlock above and this flight starting.
		c.mu.Lock()
		if e, ok := c.entries[k]; ok && !e.stale {
			c.mu.Unlock()
			return e.data, nil
		}
		c.mu.Unlock()

		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[k] = &entry{data: data}
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Invalidate marks the exact slot for key stale.
func (c *Cache) Invalidate(key Key) {
	k := key.canonical()
	c.mu.Lock()
	if e, ok := c.entries[k]; ok && !e.stale {
		e.stale = true
		c.invalidations.WithLabelValues(key.Op).Inc()
	}
	c.mu.Unlock()
}

// InvalidateOp marks every slot of the operation stale, regardless of
// arguments.
func (c *Cache) InvalidateOp(op string) {
	prefix := op + "|"
	c.mu.Lock()
	for k, e := range c.entries {
		if (k == op || strings.HasPrefix(k, prefix)) && !e.stale {
			e.stale = true
			c.invalidations.WithLabelValues(op).Inc()
		}
	}
	c.mu.Unlock()
}
