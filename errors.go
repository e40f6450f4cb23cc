package slotcache

import "errors"

// ErrExpired is returned by Get when the cached value's TTL window has
// elapsed. It carries no payload and signals only that a refresh is due;
// refresh failures are never translated into it.
var ErrExpired = errors.New("slotcache: cached value expired; call Refresh")
