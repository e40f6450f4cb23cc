package asynchook

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingHooks struct {
	fresh   atomic.Int64
	expired atomic.Int64
	ok      atomic.Int64
	failed  atomic.Int64
}

func (h *countingHooks) FreshHit()                                 { h.fresh.Add(1) }
func (h *countingHooks) ExpiredGet(time.Duration)                  { h.expired.Add(1) }
func (h *countingHooks) RefreshSucceeded(time.Duration, time.Time) { h.ok.Add(1) }
func (h *countingHooks) RefreshFailed(time.Duration, error)        { h.failed.Add(1) }

func TestEventsReachInnerHooks(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 64)

	h.FreshHit()
	h.ExpiredGet(time.Second)
	h.RefreshSucceeded(time.Millisecond, time.Now())
	h.RefreshFailed(time.Millisecond, errors.New("x"))

	h.Close() // drains the queue

	if inner.fresh.Load() != 1 || inner.expired.Load() != 1 ||
		inner.ok.Load() != 1 || inner.failed.Load() != 1 {
		t.Fatalf("events lost: fresh=%d expired=%d ok=%d failed=%d",
			inner.fresh.Load(), inner.expired.Load(), inner.ok.Load(), inner.failed.Load())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := New(&countingHooks{}, 1, 1)
	h.Close()
	h.Close() // must not panic
}
