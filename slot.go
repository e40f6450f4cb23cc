package slotcache

import (
	"context"
	"fmt"
	"time"
)

// Slot is a single-value TTL cache. It holds exactly one value of type V, the
// deadline after which that value is stale, and the operation that produces
// replacements. A slot is never empty: construction requires an initial value
// (or an immediate refresh via NewRefreshed).
//
// A slot moves between two observable states: Fresh (now < ExpiresAt) and
// Expired (now >= ExpiresAt). Get observes the state without changing it.
// Refresh runs the refresh operation; on success it replaces value and
// deadline as one step, on failure it changes nothing, so an expired slot
// stays expired and may be retried immediately.
//
// Slot has no internal locking. The caller must guarantee exclusive access
// for Refresh/GetOrRefresh and at least shared access for Get — typically by
// wrapping the slot in a guarded.Cache or an external sync.RWMutex. Two
// callers that independently observe expiry and refresh will run the refresh
// operation twice; the slot does not deduplicate in-flight refreshes.
type Slot[V any] struct {
	ttl       time.Duration
	expiresAt time.Time
	value     V
	refresh   RefreshFunc[V]

	log   Logger
	hooks Hooks
	now   func() time.Time // for testing; defaults to time.Now
}

var _ Cache[struct{}] = (*Slot[struct{}])(nil)

func newSlot[V any](opts Options[V]) (*Slot[V], error) {
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("slotcache: ttl must be positive, got %v", opts.TTL)
	}
	if opts.Refresh == nil {
		return nil, fmt.Errorf("slotcache: refresh func is required")
	}

	s := &Slot[V]{
		ttl:     opts.TTL,
		value:   opts.Initial,
		refresh: opts.Refresh,
		now:     time.Now,
	}
	// defaults
	s.log = opts.Logger
	if s.log == nil {
		s.log = NopLogger{}
	}
	s.hooks = opts.Hooks
	if s.hooks == nil {
		s.hooks = NopHooks{}
	}
	s.expiresAt = s.now().Add(s.ttl)
	return s, nil
}

// Get returns the cached value if its TTL window has not elapsed, or
// ErrExpired otherwise. It never invokes the refresh operation and never
// mutates the slot; an expired slot is only revived by Refresh/GetOrRefresh.
func (s *Slot[V]) Get() (V, error) {
	now := s.now()
	if now.Before(s.expiresAt) {
		return s.value, nil
	}
	s.hooks.ExpiredGet(now.Sub(s.expiresAt))
	var zero V
	return zero, ErrExpired
}

// Refresh invokes the refresh operation exactly once, regardless of whether
// the current value is still fresh. On success the new value and a deadline
// of TTL from completion (not invocation) replace the old pair together, and
// the new value is returned. On failure value and deadline are left exactly
// as they were and the operation's error is returned unwrapped; the slot is
// immediately eligible for another attempt.
func (s *Slot[V]) Refresh(ctx context.Context) (V, error) {
	start := s.now()
	v, err := s.refresh(ctx)
	if err != nil {
		elapsed := s.now().Sub(start)
		s.hooks.RefreshFailed(elapsed, err)
		s.log.Warn("refresh failed", Fields{"elapsed": elapsed, "err": err})
		var zero V
		return zero, err
	}

	// single atomic step from a Get observer's point of view
	done := s.now()
	s.value = v
	s.expiresAt = done.Add(s.ttl)

	s.hooks.RefreshSucceeded(done.Sub(start), s.expiresAt)
	s.log.Debug("refresh succeeded", Fields{"elapsed": done.Sub(start), "expires_at": s.expiresAt})
	return v, nil
}

// GetOrRefresh returns the cached value while it is fresh, without invoking
// the refresh operation. Once expired it behaves exactly like Refresh.
func (s *Slot[V]) GetOrRefresh(ctx context.Context) (V, error) {
	if s.now().Before(s.expiresAt) {
		s.hooks.FreshHit()
		return s.value, nil
	}
	return s.Refresh(ctx)
}

// TTL reports the fixed lifetime granted after each successful refresh.
func (s *Slot[V]) TTL() time.Duration { return s.ttl }

// ExpiresAt reports the instant the current value goes stale.
func (s *Slot[V]) ExpiresAt() time.Time { return s.expiresAt }

// String describes the slot's timing state. The cached value is deliberately
// omitted: slots commonly hold credentials.
func (s *Slot[V]) String() string {
	return fmt.Sprintf("{ttl: %v, remaining: %v}", s.ttl, s.expiresAt.Sub(s.now()))
}
