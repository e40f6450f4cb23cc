// Package guarded shares one slot across goroutines with a read/write lock:
// shared access for Get, exclusive access for Refresh/GetOrRefresh. This is
// the access contract slotcache.Slot documents, packaged as a wrapper.
//
// The wrapper does NOT deduplicate refreshes. Two goroutines that both find
// the slot expired acquire the write lock in turn and each run the refresh
// operation, so the second result overwrites the first. Known limitation of
// the underlying slot; callers needing single-flight must layer it themselves.
package guarded

import (
	"context"
	"sync"
	"time"

	"github.com/unkn0wn-root/slotcache"
)

// Cache wraps any slotcache.Cache with a sync.RWMutex and implements
// slotcache.Cache itself, so guarded and bare slots are interchangeable to
// callers holding the interface.
type Cache[V any] struct {
	mu    sync.RWMutex
	inner slotcache.Cache[V]
}

var _ slotcache.Cache[struct{}] = (*Cache[struct{}])(nil)

func New[V any](inner slotcache.Cache[V]) *Cache[V] {
	return &Cache[V]{inner: inner}
}

func (g *Cache[V]) Get() (V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.Get()
}

func (g *Cache[V]) Refresh(ctx context.Context) (V, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Refresh(ctx)
}

func (g *Cache[V]) GetOrRefresh(ctx context.Context) (V, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.GetOrRefresh(ctx)
}

func (g *Cache[V]) TTL() time.Duration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.TTL()
}

func (g *Cache[V]) ExpiresAt() time.Time {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.ExpiresAt()
}
