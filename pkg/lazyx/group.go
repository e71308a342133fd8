package lazyx

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Group memoizes values per key. Concurrent first calls for the same key are
// collapsed into a single initializer execution; successful values are
// cached forever, while errors are not cached and the next call retries.
//
// The zero value is ready to use.
type Group[V any] struct {
	sf     singleflight.Group
	values sync.Map // key -> V
}

// Get returns the value for key, computing it with init if absent.
func (g *Group[V]) Get(key string, init func() (V, error)) (V, error) {
	if v, ok := g.values.Load(key); ok {
		return v.(V), nil
	}

	v, err, _ := g.sf.Do(key, func() (any, error) {
		// Re-check inside the flight: a previous flight may have stored it.
		if v, ok := g.values.Load(key); ok {
			return v, nil
		}
		v, err := init()
		if err != nil {
			return nil, err
		}
		g.values.Store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Has reports whether key has a cached value.
func (g *Group[V]) Has(key string) bool {
	_, ok := g.values.Load(key)
	return ok
}

// Forget drops the cached value for key so the next Get recomputes it.
func (g *Group[V]) Forget(key string) {
	g.values.Delete(key)
	g.sf.Forget(key)
}
