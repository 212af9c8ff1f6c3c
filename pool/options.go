// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for pool construction. Validation happens in New.

package pool

import (
	"log/slog"
	"time"

	"github.com/momentics/hioload-pool/api"
)

// Option customizes pool construction.
type Option[T comparable] func(*Pool[T])

// WithOverflow allows n extra resources beyond capacity under load.
func WithOverflow[T comparable](n int) Option[T] {
	return func(p *Pool[T]) {
		p.overflow = n
	}
}

// WithTimeout bounds the blocking wait of Get. A zero timeout fails
// immediately when the pool is depleted. Without this option Get blocks
// until a resource is released.
func WithTimeout[T comparable](d time.Duration) Option[T] {
	return func(p *Pool[T]) {
		p.timeout = d
		p.hasTimeout = true
	}
}

// WithFactoryArgs captures the argument map handed to the factory on every
// resource creation.
func WithFactoryArgs[T comparable](args map[string]any) Option[T] {
	return func(p *Pool[T]) {
		p.factoryArgs = args
	}
}

// WithPing installs the health check run on every resource before it is
// handed out.
func WithPing[T comparable](ping api.PingFunc[T]) Option[T] {
	return func(p *Pool[T]) {
		p.ping = ping
	}
}

// WithNormalize installs the hook that resets caller-visible resource state
// before reuse.
func WithNormalize[T comparable](normalize api.NormalizeFunc[T]) Option[T] {
	return func(p *Pool[T]) {
		p.normalize = normalize
	}
}

// WithWrapper sets the pool-wide handle decorator. Get wraps every base
// handle with it; GetWith overrides it per call.
func WithWrapper[T comparable](wrap api.WrapperFactory[T]) Option[T] {
	return func(p *Pool[T]) {
		p.wrap = wrap
	}
}

// WithLogger sets the structured logger used for construction notices and
// lifecycle debug events.
func WithLogger[T comparable](log *slog.Logger) Option[T] {
	return func(p *Pool[T]) {
		p.log = log
	}
}
