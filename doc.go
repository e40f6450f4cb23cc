// Package slotcache implements a single-slot TTL cache for one value produced
// by a fallible, on-demand refresh operation. The slot always holds a value;
// once the TTL elapses reads fail with ErrExpired until a refresh succeeds.
// Typical use: an auth token fetched over the network, where the fetch carries
// secrets and cannot be cached by a proxy.
//
// Components:
//   - Slot[V]: the concrete generic slot. Get is synchronous and read-only;
//     Refresh/GetOrRefresh invoke the caller's RefreshFunc and replace
//     value+expiry as one step on success.
//   - Cache[V]: interface over the slot with the refresh operation's concrete
//     type erased. Use it to store slots in statically-initialized or
//     heterogeneous containers; costs dynamic dispatch, nothing else changes.
//   - Hooks / Logger: optional, no-op by default. Adapters live in
//     sloghooks, promhooks, hooks/async and log/{zap,logrus,slog}.
//   - guarded: RWMutex wrapper for sharing one slot across goroutines.
//
// The slot itself is NOT synchronized. Callers must hold exclusive access for
// Refresh/GetOrRefresh and at least shared access for Get, e.g. via the
// guarded package. Concurrent refreshes are not deduplicated: two callers that
// both observe an expired slot under independent acquisitions run the refresh
// operation twice. Known limitation, not a bug.
//
// Failure model:
//
//	v, err := slot.Get()        // ErrExpired once the TTL window has elapsed
//	v, err := slot.Refresh(ctx) // RefreshFunc's own error, verbatim
//
// A failed refresh leaves value and expiry untouched, so retrying is always
// safe and entirely the caller's policy. The slot never retries, never backs
// off, and never refreshes on a timer.
package slotcache
