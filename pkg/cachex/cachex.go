// Package cachex provides a loading TTL cache: values are fetched through a
// loader on miss, concurrent loads for the same key are collapsed into one,
// and entries expire after a configurable TTL.
package cachex

import (
	"context"

	"github.com/Abraxas-365/corekit/pkg/asyncx"
	"github.com/Abraxas-365/corekit/pkg/config"
	"github.com/Abraxas-365/corekit/pkg/logx"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

var log = logx.Named("cachex")

// Loader fetches the value for a missing key.
type Loader[V any] func(ctx context.Context, key string) (V, error)

// Cache is a TTL cache with duplicate-load suppression. Loads that fail are
// not cached; the next Get retries.
type Cache[V any] struct {
	items  *ttlcache.Cache[string, V]
	sf     singleflight.Group
	loader Loader[V]
}

// New builds a Cache from cfg with the given loader.
func New[V any](cfg config.CachexConfig, loader Loader[V]) *Cache[V] {
	opts := []ttlcache.Option[string, V]{
		ttlcache.WithTTL[string, V](cfg.TTL.Std()),
	}
	if cfg.Capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, V](cfg.Capacity))
	}

	return &Cache[V]{
		items:  ttlcache.New(opts...),
		loader: loader,
	}
}

// Get returns the cached value for key, loading it at most once per
// concurrent burst of callers on a miss.
func (c *Cache[V]) Get(ctx context.Context, key string) (V, error) {
	if item := c.items.Get(key); item != nil {
		return item.Value(), nil
	}

	v, err, shared := c.sf.Do(key, func() (any, error) {
		// Re-check inside the flight: the winner may already have stored it.
		if item := c.items.Get(key); item != nil {
			return item.Value(), nil
		}
		v, err := c.loader(ctx, key)
		if err != nil {
			return nil, err
		}
		c.items.Set(key, v, ttlcache.DefaultTTL)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	if shared {
		log.WithField("key", key).Trace("load shared across concurrent callers")
	}
	return v.(V), nil
}

// Set stores a value directly, bypassing the loader.
func (c *Cache[V]) Set(key string, value V) {
	c.items.Set(key, value, ttlcache.DefaultTTL)
}

// Has reports whether key currently has a live entry.
func (c *Cache[V]) Has(key string) bool {
	return c.items.Has(key)
}

// Delete drops key from the cache.
func (c *Cache[V]) Delete(key string) {
	c.items.Delete(key)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	return c.items.Len()
}

// Start runs the expiry loop in the background. Without it entries are only
// evicted lazily on access.
func (c *Cache[V]) Start() {
	asyncx.Do(c.items.Start)
}

// Stop terminates the expiry loop started by Start.
func (c *Cache[V]) Stop() {
	c.items.Stop()
}
