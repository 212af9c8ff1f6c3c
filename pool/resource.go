// File: pool/resource.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Caller-facing handle. Owns the raw resource between checkout and release;
// after Close the handle is inert and all references are cleared. Access to
// the raw resource goes through Unwrap, the typed replacement for the
// dynamic attribute forwarding of proxy-style pools.

package pool

import (
	"sync"
)

// Resource is the base handle returned by Pool.Get. Custom handle types
// decorate it through an api.WrapperFactory.
type Resource[T comparable] struct {
	mu       sync.Mutex
	resource T
	pool     *Pool[T]
	live     bool
}

// Unwrap returns the raw resource, or the zero value once the handle has
// been closed.
func (r *Resource[T]) Unwrap() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resource
}

// Close returns the resource to the pool and clears the handle. A second
// Close is a no-op. Pair every Get with a deferred Close so the resource is
// released on success and failure paths alike.
func (r *Resource[T]) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.live {
		return nil
	}
	err := r.pool.Put(r.resource)
	var zero T
	r.resource = zero
	r.pool = nil
	r.live = false
	return err
}
