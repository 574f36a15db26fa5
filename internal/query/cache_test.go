package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("second access is served from cache", func(t *testing.T) {
		c := NewCache(nil)
		calls := 0
		fetch := func(ctx context.Context) (any, error) {
			calls++
			return "v1", nil
		}

		v, err := c.Get(ctx, Key{Op: "getClients"}, fetch)
		assert.NoError(t, err)
		assert.Equal(t, "v1", v)

		v, err = c.Get(ctx, Key{Op: "getClients"}, fetch)
		assert.NoError(t, err)
		assert.Equal(t, "v1", v)
		assert.Equal(t, 1, calls)
	})

	t.Run("different arguments use different slots", func(t *testing.T) {
		c := NewCache(nil)
		calls := 0
		fetch := func(ctx context.Context) (any, error) {
			calls++
			return calls, nil
		}

		a, _ := c.Get(ctx, Key{Op: "getClientById", Args: []string{"a"}}, fetch)
		b, _ := c.Get(ctx, Key{Op: "getClientById", Args: []string{"b"}}, fetch)

		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
	})

	t.Run("fetch error is propagated and not cached", func(t *testing.T) {
		c := NewCache(nil)
		calls := 0

		_, err := c.Get(ctx, Key{Op: "getClients"}, func(ctx context.Context) (any, error) {
			calls++
			return nil, errors.New("db down")
		})
		assert.Error(t, err)

		v, err := c.Get(ctx, Key{Op: "getClients"}, func(ctx context.Context) (any, error) {
			calls++
			return "v1", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "v1", v)
		assert.Equal(t, 2, calls)
	})

	t.Run("concurrent accesses collapse into one fetch", func(t *testing.T) {
		c := NewCache(nil)
		var calls atomic.Int32
		release := make(chan struct{})

		fetch := func(ctx context.Context) (any, error) {
			calls.Add(1)
			<-release
			return "v1", nil
		}

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := c.Get(ctx, Key{Op: "getClients"}, fetch)
				assert.NoError(t, err)
				assert.Equal(t, "v1", v)
			}()
		}
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, calls.Load(), int32(2))
	})
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("stale slot refetches on next access", func(t *testing.T) {
		c := NewCache(nil)
		calls := 0
		fetch := func(ctx context.Context) (any, error) {
			calls++
			return calls, nil
		}

		v, _ := c.Get(ctx, Key{Op: "getClients"}, fetch)
		assert.Equal(t, 1, v)

		c.Invalidate(Key{Op: "getClients"})

		v, _ = c.Get(ctx, Key{Op: "getClients"}, fetch)
		assert.Equal(t, 2, v)

		v, _ = c.Get(ctx, Key{Op: "getClients"}, fetch)
		assert.Equal(t, 2, v)
	})

	t.Run("invalidating an absent slot is a no-op", func(t *testing.T) {
		c := NewCache(nil)
		c.Invalidate(Key{Op: "getClients"})

		v, err := c.Get(ctx, Key{Op: "getClients"}, func(ctx context.Context) (any, error) {
			return "v1", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "v1", v)
	})

	t.Run("refetch error is propagated and the slot stays stale", func(t *testing.T) {
		c := NewCache(nil)

		_, _ = c.Get(ctx, Key{Op: "getClients"}, func(ctx context.Context) (any, error) {
			return "v1", nil
		})
		c.Invalidate(Key{Op: "getClients"})

		_, err := c.Get(ctx, Key{Op: "getClients"}, func(ctx context.Context) (any, error) {
			return nil, errors.New("db down")
		})
		assert.Error(t, err)

		v, err := c.Get(ctx, Key{Op: "getClients"}, func(ctx context.Context) (any, error) {
			return "v2", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "v2", v)
	})

	t.Run("InvalidateOp marks every argument variant stale", func(t *testing.T) {
		c := NewCache(nil)
		calls := map[string]int{}
		fetch := func(id string) func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				calls[id]++
				return calls[id], nil
			}
		}

		_, _ = c.Get(ctx, Key{Op: "getClientProjects", Args: []string{"a"}}, fetch("a"))
		_, _ = c.Get(ctx, Key{Op: "getClientProjects", Args: []string{"b"}}, fetch("b"))
		_, _ = c.Get(ctx, Key{Op: "getClients"}, fetch("clients"))

		c.InvalidateOp("getClientProjects")

		_, _ = c.Get(ctx, Key{Op: "getClientProjects", Args: []string{"a"}}, fetch("a"))
		_, _ = c.Get(ctx, Key{Op: "getClientProjects", Args: []string{"b"}}, fetch("b"))
		_, _ = c.Get(ctx, Key{Op: "getClients"}, fetch("clients"))

		assert.Equal(t, 2, calls["a"])
		assert.Equal(t, 2, calls["b"])
		assert.Equal(t, 1, calls["clients"])
	})
}

func TestCache_Metrics(t *testing.T) {
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	c := NewCache(reg)

	fetch := func(ctx context.Context) (any, error) { return "v", nil }
	_, _ = c.Get(ctx, Key{Op: "getClients"}, fetch)
	_, _ = c.Get(ctx, Key{Op: "getClients"}, fetch)
	c.Invalidate(Key{Op: "getClients"})

	families, err := reg.Gather()
	assert.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			got[mf.GetName()] += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), got["query_cache_hits_total"])
	assert.Equal(t, float64(1), got["query_cache_misses_total"])
	assert.Equal(t, float64(1), got["query_cache_invalidations_total"])
}
