// File: pool/tracker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-resource liveness tracking. A tracker owns exactly one raw resource
// for the resource's lifetime within the pool and observes, through a weak
// reference, whether a handed-out handle is still reachable. The weak
// reference never keeps a handle alive, so a handle dropped without Close
// becomes collectable and its resource shows up as available again.

package pool

import (
	"weak"

	"go.uber.org/atomic"
)

type tracker[T comparable] struct {
	resource T

	// ref observes the most recently issued base handle. The zero value
	// reads as nil, covering the never-checked-out case.
	ref weak.Pointer[Resource[T]]

	// queued is set while the tracker sits in the idle store. It dedupes
	// reclamation against a concurrent explicit release.
	queued atomic.Bool

	// reserved covers the window between checkout (pop or creation) and
	// the weak reference being bound, during which the resource has no
	// live handle yet but must not be reclaimed.
	reserved atomic.Bool
}

// newTracker registers a freshly created resource. The tracker starts
// reserved: creation only happens on a checkout path.
func newTracker[T comparable](resource T) *tracker[T] {
	t := &tracker[T]{resource: resource}
	t.reserved.Store(true)
	return t
}

// available reports that no live handle references the resource: either it
// was never checked out, or its handle was dropped and collected without an
// explicit Close.
func (t *tracker[T]) available() bool {
	return t.ref.Value() == nil
}

// wrapResource issues a new base handle for the tracked resource and binds
// the liveness reference to it. Callers must hold the pool lock: harvest
// reads ref under the same lock.
func (t *tracker[T]) wrapResource(p *Pool[T]) *Resource[T] {
	base := &Resource[T]{resource: t.resource, pool: p, live: true}
	t.ref = weak.Make(base)
	t.reserved.Store(false)
	return base
}
