// Package promhooks implements slotcache.Hooks as Prometheus metrics.
//
// One Hooks value maps to one slot (or one group of slots sharing a name):
// counters for fresh hits, expired reads and refresh outcomes, plus a
// histogram of refresh durations.
package promhooks

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/unkn0wn-root/slotcache"
)

type Hooks struct {
	freshHits      prometheus.Counter
	expiredGets    prometheus.Counter
	refreshTotal   *prometheus.CounterVec // outcome: "success" | "error"
	refreshSeconds prometheus.Histogram
}

var _ slotcache.Hooks = (*Hooks)(nil)

// New builds the collectors and registers them with reg. The slot label
// distinguishes multiple cached values sharing one registry (e.g. "api_token").
func New(reg prometheus.Registerer, slot string) (*Hooks, error) {
	labels := prometheus.Labels{"slot": slot}
	h := &Hooks{
		freshHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slotcache",
			Name:        "fresh_hits_total",
			Help:        "GetOrRefresh calls served from the cached value.",
			ConstLabels: labels,
		}),
		expiredGets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "slotcache",
			Name:        "expired_gets_total",
			Help:        "Get calls that observed an expired value.",
			ConstLabels: labels,
		}),
		refreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "slotcache",
			Name:        "refresh_total",
			Help:        "Refresh operations by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		refreshSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "slotcache",
			Name:        "refresh_duration_seconds",
			Help:        "Duration of refresh operations.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{h.freshHits, h.expiredGets, h.refreshTotal, h.refreshSeconds} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// MustNew is like New but panics on registration errors. Handy for
// package-level variables.
func MustNew(reg prometheus.Registerer, slot string) *Hooks {
	h, err := New(reg, slot)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hooks) FreshHit()                { h.freshHits.Inc() }
func (h *Hooks) ExpiredGet(time.Duration) { h.expiredGets.Inc() }

func (h *Hooks) RefreshSucceeded(elapsed time.Duration, _ time.Time) {
	h.refreshTotal.WithLabelValues("success").Inc()
	h.refreshSeconds.Observe(elapsed.Seconds())
}

func (h *Hooks) RefreshFailed(elapsed time.Duration, _ error) {
	h.refreshTotal.WithLabelValues("error").Inc()
	h.refreshSeconds.Observe(elapsed.Seconds())
}
