// Package sloghooks implements slotcache.Hooks on top of log/slog.
//
// Fresh hits and expired reads happen on hot paths, so both support sampling;
// refresh outcomes are rare and are always logged.
package sloghooks

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/unkn0wn-root/slotcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	FreshHitEvery   uint64
	ExpiredGetEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	freshHitCtr   atomic.Uint64
	expiredGetCtr atomic.Uint64
}

var _ slotcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) FreshHit() {
	if h.l == nil || !sample(h.opts.FreshHitEvery, &h.freshHitCtr) {
		return
	}
	h.l.Debug("slotcache.fresh_hit")
}

func (h *Hooks) ExpiredGet(age time.Duration) {
	if h.l == nil || !sample(h.opts.ExpiredGetEvery, &h.expiredGetCtr) {
		return
	}
	h.l.Debug("slotcache.expired_get",
		"age", age)
}

func (h *Hooks) RefreshSucceeded(elapsed time.Duration, expiresAt time.Time) {
	if h.l == nil {
		return
	}
	h.l.Info("slotcache.refresh_succeeded",
		"elapsed", elapsed,
		"expires_at", expiresAt)
}

func (h *Hooks) RefreshFailed(elapsed time.Duration, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("slotcache.refresh_failed",
		"elapsed", elapsed,
		"err", err)
}
