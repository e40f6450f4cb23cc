package slotcache

import "time"

// Hooks are lightweight callbacks for high-signal slot events.
// Implementations MUST be cheap and non-blocking; the slot calls them on hot
// paths. Wrap with hooks/async to move slow sinks off the caller's goroutine.
type Hooks interface {
	// GetOrRefresh returned the cached value without invoking the refresh
	// operation (the slot was still fresh).
	FreshHit()

	// Get observed an expired value. age is how far past the deadline the
	// read happened.
	ExpiredGet(age time.Duration)

	// The refresh operation completed and the slot now expires at expiresAt.
	RefreshSucceeded(elapsed time.Duration, expiresAt time.Time)

	// The refresh operation failed; the slot's value and deadline are
	// unchanged.
	RefreshFailed(elapsed time.Duration, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) FreshHit()                                 {}
func (NopHooks) ExpiredGet(time.Duration)                  {}
func (NopHooks) RefreshSucceeded(time.Duration, time.Time) {}
func (NopHooks) RefreshFailed(time.Duration, error)        {}
