package slotcache

import (
	"context"
	"time"
)

// RefreshFunc produces a new value for the slot. It is invoked only on demand
// (never on a timer) and its error is returned to the caller verbatim.
type RefreshFunc[V any] func(ctx context.Context) (V, error)

// Cache is the type-erased surface of a slot: the same contract as Slot[V]
// with the refresh operation's concrete type hidden behind the interface.
// Hold a *Slot[V] directly on performance-sensitive paths; hold a Cache[V]
// where the slot must live in a statically-initialized or heterogeneous
// container and only V may be named. Semantics are identical on both paths.
//
// Implementations are not required to be safe for concurrent use; see the
// access contract on Slot.
type Cache[V any] interface {
	// Get returns the cached value, or ErrExpired once the TTL has elapsed.
	// Never invokes the refresh operation and never mutates the slot.
	Get() (V, error)

	// Refresh invokes the refresh operation unconditionally, exactly once.
	Refresh(ctx context.Context) (V, error)

	// GetOrRefresh returns the cached value while fresh, refreshing only
	// once it has expired.
	GetOrRefresh(ctx context.Context) (V, error)

	// TTL reports the fixed lifetime granted after each successful refresh.
	TTL() time.Duration

	// ExpiresAt reports the instant the current value goes stale.
	ExpiresAt() time.Time
}

// Options configure a slot. TTL and Refresh are required; the rest default.
type Options[V any] struct {
	// Required
	TTL     time.Duration  // lifetime granted on construction and after each successful refresh
	Refresh RefreshFunc[V] // produces replacement values on demand

	// Initial seeds the slot. New starts the slot Fresh holding this value;
	// NewRefreshed ignores it and fetches the first value instead.
	Initial V

	Logger Logger // if nil, NopLogger
	Hooks  Hooks  // if nil, NopHooks
}

// New constructs a slot holding Initial, expiring TTL from now.
func New[V any](opts Options[V]) (*Slot[V], error) {
	return newSlot(opts)
}

// NewRefreshed constructs a slot by invoking the refresh operation immediately
// instead of seeding it with Options.Initial. If the refresh fails, its error
// is returned verbatim and no slot is created.
func NewRefreshed[V any](ctx context.Context, opts Options[V]) (*Slot[V], error) {
	s, err := newSlot(opts)
	if err != nil {
		return nil, err
	}
	if _, err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}
