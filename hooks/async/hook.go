// Package asynchook decouples hook sinks from the caller's goroutine.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    FreshHitEvery: 100, // sample: ~every 100th hit
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	slot, _ := slotcache.New[Token](slotcache.Options[Token]{
//	    TTL:     time.Minute,
//	    Refresh: fetchToken,
//	    Hooks:   hooks, // or `raw` if the sink is cheap enough
//	})
//
// Events are dropped, not queued unboundedly, when the sink falls behind.
package asynchook

import (
	"sync"
	"time"

	"github.com/unkn0wn-root/slotcache"
)

type Hooks struct {
	inner slotcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ slotcache.Hooks = (*Hooks)(nil)

func New(inner slotcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) FreshHit()                    { h.try(func() { h.inner.FreshHit() }) }
func (h *Hooks) ExpiredGet(age time.Duration) { h.try(func() { h.inner.ExpiredGet(age) }) }

func (h *Hooks) RefreshSucceeded(elapsed time.Duration, expiresAt time.Time) {
	h.try(func() { h.inner.RefreshSucceeded(elapsed, expiresAt) })
}

func (h *Hooks) RefreshFailed(elapsed time.Duration, err error) {
	h.try(func() { h.inner.RefreshFailed(elapsed, err) })
}
