// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package api

import (
	"time"
)

// Factory produces a raw resource. It is invoked with the fixed argument map
// captured at pool construction; the pool never mutates the map.
type Factory[T comparable] func(args map[string]any) (T, error)

// PingFunc reports whether a pooled resource is still usable. Resources that
// fail the ping are evicted and replaced before they reach a caller.
type PingFunc[T comparable] func(resource T) bool

// NormalizeFunc resets caller-visible state on a resource so every checkout
// observes the same starting conditions.
type NormalizeFunc[T comparable] func(resource T)

// Handle is the caller-facing wrapper around a pooled resource.
type Handle[T any] interface {
	// Unwrap returns the underlying raw resource. After Close it returns
	// the zero value.
	Unwrap() T

	// Close returns the resource to its pool and makes the handle inert.
	// Closing an inert handle is a no-op.
	Close() error
}

// WrapperFactory decorates the base handle produced by the pool. The
// decorator must keep the base handle reachable for as long as the decorated
// handle is in use.
type WrapperFactory[T comparable] func(base Handle[T]) Handle[T]

// Pool hands out bounded, reusable resources with back-pressure on
// exhaustion.
type Pool[T comparable] interface {
	// Get acquires a resource, creating one if the pool has headroom and
	// otherwise waiting up to the configured timeout.
	Get() (Handle[T], error)

	// GetWith acquires a resource wrapped by the given factory instead of
	// the pool-wide one.
	GetWith(wrap WrapperFactory[T]) (Handle[T], error)

	// Put returns a raw resource to the pool. The resource must have been
	// created by this pool.
	Put(raw T) error

	// Capacity is the bound of the idle store.
	Capacity() int

	// Overflow is the number of extra resources allowed beyond Capacity.
	Overflow() int

	// MaxSize is Capacity plus Overflow.
	MaxSize() int

	// Size is the number of resources currently tracked, idle and checked
	// out alike. Point-in-time snapshot.
	Size() int

	// Timeout reports the acquisition timeout; ok is false when the pool
	// blocks indefinitely.
	Timeout() (d time.Duration, ok bool)

	// FactoryArgs returns a copy of the argument map passed to the factory.
	FactoryArgs() map[string]any

	// Stats returns a point-in-time snapshot of pool counters.
	Stats() Stats
}

// Stats is a point-in-time snapshot of pool activity. Snapshots are not
// transactionally consistent with concurrent pool operations.
type Stats struct {
	// Size is the number of tracked resources, InUse plus Idle.
	Size int
	// Idle is the number of resources parked in the idle store.
	Idle int
	// InUse is the number of resources currently checked out.
	InUse int

	Gets      int64 // acquisition attempts
	Puts      int64 // explicit releases
	Hits      int64 // acquisitions served from the idle store
	Creations int64 // factory invocations that succeeded
	Timeouts  int64 // acquisitions that failed on a depleted pool
	Harvested int64 // abandoned resources returned by reclamation
	Evictions int64 // resources dropped on overflow or failed ping
}
