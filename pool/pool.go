// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core acquisition/release algorithm. Registry mutations happen under one
// pool-wide mutex; the blocking wait for an idle resource runs outside it so
// releasing goroutines can always make progress.

package pool

import (
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/juju/errors"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/internal/queue"
)

// Pool is a bounded, thread-safe resource pool. It keeps at most Capacity
// idle resources, creates up to Overflow extra ones under load, and blocks
// acquirers with an optional timeout once the limit is reached.
type Pool[T comparable] struct {
	capacity   int
	overflow   int
	timeout    time.Duration
	hasTimeout bool

	factory     api.Factory[T]
	factoryArgs map[string]any
	ping        api.PingFunc[T]
	normalize   api.NormalizeFunc[T]
	wrap        api.WrapperFactory[T]
	log         *slog.Logger

	mu       sync.Mutex
	registry []*tracker[T]
	idle     *queue.Blocking[*tracker[T]]

	stats statCounters
}

var _ api.Pool[int] = (*Pool[int])(nil)

// New builds a pool around factory with the given idle capacity.
func New[T comparable](factory api.Factory[T], capacity int, opts ...Option[T]) (*Pool[T], error) {
	if factory == nil {
		return nil, errors.Annotate(ErrInvalidConfig, "factory must not be nil")
	}
	p := &Pool[T]{
		capacity: capacity,
		log:      slog.Default(),
		factory:  factory,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.capacity < 1 {
		return nil, errors.Annotatef(ErrInvalidConfig, "capacity %d, need at least 1", p.capacity)
	}
	if p.overflow < 0 {
		return nil, errors.Annotatef(ErrInvalidConfig, "overflow %d, must be non-negative", p.overflow)
	}
	if p.hasTimeout && p.timeout < 0 {
		return nil, errors.Annotatef(ErrInvalidConfig, "timeout %s, must be non-negative", p.timeout)
	}
	if p.ping == nil {
		p.log.Warn("pool: no ping hook configured, resources are assumed always healthy")
		p.ping = func(T) bool { return true }
	}
	if p.normalize == nil {
		p.log.Warn("pool: no normalize hook configured, resources are reused as returned")
		p.normalize = func(T) {}
	}
	p.idle = queue.NewBlocking[*tracker[T]](p.capacity)
	return p, nil
}

// Get acquires a resource. The lookup order is: reclaim abandoned resources
// when the idle store is empty, take an idle resource, create one if the
// pool is under capacity+overflow, then wait up to the configured timeout.
// The resource is health-checked and normalized before it is handed out.
func (p *Pool[T]) Get() (api.Handle[T], error) {
	return p.get(p.wrap)
}

// GetWith acquires a resource wrapped by wrap instead of the pool-wide
// decorator.
func (p *Pool[T]) GetWith(wrap api.WrapperFactory[T]) (api.Handle[T], error) {
	return p.get(wrap)
}

func (p *Pool[T]) get(wrap api.WrapperFactory[T]) (api.Handle[T], error) {
	p.stats.gets.Inc()

	if p.idle.Len() == 0 {
		p.harvest()
	}

	rt, ok := p.idle.TryPop()
	if ok {
		rt.reserved.Store(true)
		rt.queued.Store(false)
		p.stats.hits.Inc()
	} else {
		var err error
		rt, err = p.makeIfUnderLimit()
		if err != nil {
			return nil, err
		}
	}

	if rt == nil {
		// Depleted: wait for a release without holding the pool lock.
		wait := time.Duration(-1)
		if p.hasTimeout {
			wait = p.timeout
		}
		rt, ok = p.idle.Pop(wait)
		if !ok {
			p.stats.timeouts.Inc()
			return nil, ErrPoolDepleted
		}
		rt.reserved.Store(true)
		rt.queued.Store(false)
		p.stats.hits.Inc()
	}

	if !p.ping(rt.resource) {
		// Replace a dead resource in one registry transaction. This path
		// never re-enters the blocking wait.
		var err error
		rt, err = p.replace(rt)
		if err != nil {
			return nil, err
		}
	}

	p.normalize(rt.resource)

	p.mu.Lock()
	base := rt.wrapResource(p)
	p.mu.Unlock()

	if wrap != nil {
		return wrap(base), nil
	}
	return base, nil
}

// Put returns a raw resource to the idle store, or discards it when the
// store is full. The resource must have been created by this pool.
func (p *Pool[T]) Put(raw T) error {
	p.stats.puts.Inc()

	p.mu.Lock()
	defer p.mu.Unlock()

	rt := p.lookupLocked(raw)
	if rt == nil {
		return ErrUnknownResource
	}
	if !rt.queued.CompareAndSwap(false, true) {
		// Already parked in the idle store by a concurrent reclamation.
		return nil
	}
	if !p.idle.TryPush(rt) {
		rt.queued.Store(false)
		p.removeLocked(rt)
		p.stats.evictions.Inc()
		p.log.Debug("pool: idle store full on release, resource discarded")
	}
	return nil
}

// With acquires a resource, runs fn on the raw value and releases the
// resource when fn returns, on success and failure paths alike.
func (p *Pool[T]) With(fn func(raw T) error) error {
	h, err := p.Get()
	if err != nil {
		return err
	}
	defer h.Close()
	return fn(h.Unwrap())
}

// Capacity is the bound of the idle store.
func (p *Pool[T]) Capacity() int { return p.capacity }

// Overflow is the number of extra resources allowed beyond Capacity.
func (p *Pool[T]) Overflow() int { return p.overflow }

// MaxSize is the largest number of resources that may exist at once.
func (p *Pool[T]) MaxSize() int { return p.capacity + p.overflow }

// Timeout reports the acquisition timeout; ok is false when Get blocks
// indefinitely.
func (p *Pool[T]) Timeout() (d time.Duration, ok bool) {
	return p.timeout, p.hasTimeout
}

// Size is the number of resources currently tracked by the pool, idle and
// checked out alike. The value is a snapshot and can change immediately.
func (p *Pool[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.registry)
}

// FactoryArgs returns a copy of the argument map handed to the factory.
func (p *Pool[T]) FactoryArgs() map[string]any {
	return maps.Clone(p.factoryArgs)
}

// harvest returns abandoned resources to the idle store. A resource is
// abandoned when its handle was dropped without Close and has since been
// collected. Trackers already parked in the idle store are skipped; if the
// store fills up, the remaining abandoned resources are discarded the same
// way an overflowing release is.
func (p *Pool[T]) harvest() {
	p.mu.Lock()
	defer p.mu.Unlock()

	var drop []*tracker[T]
	for _, rt := range p.registry {
		if rt.reserved.Load() || !rt.available() || !rt.queued.CompareAndSwap(false, true) {
			continue
		}
		if p.idle.TryPush(rt) {
			p.stats.harvested.Inc()
			continue
		}
		rt.queued.Store(false)
		drop = append(drop, rt)
	}
	for _, rt := range drop {
		p.removeLocked(rt)
		p.stats.evictions.Inc()
	}
}

// makeIfUnderLimit creates and registers a resource when the pool is below
// capacity+overflow; it returns nil when the pool is full. The factory runs
// under the pool lock so the registry can never exceed its bound.
func (p *Pool[T]) makeIfUnderLimit() (*tracker[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.registry) >= p.MaxSize() {
		return nil, nil
	}
	return p.makeLocked()
}

// replace evicts rt and creates its replacement in one registry
// transaction, keeping the size bound intact.
func (p *Pool[T]) replace(rt *tracker[T]) (*tracker[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removeLocked(rt)
	p.stats.evictions.Inc()
	p.log.Debug("pool: resource failed ping, replacing")
	return p.makeLocked()
}

func (p *Pool[T]) makeLocked() (*tracker[T], error) {
	raw, err := p.factory(p.factoryArgs)
	if err != nil {
		return nil, errors.Annotate(err, "pool: resource factory")
	}
	rt := newTracker(raw)
	p.registry = append(p.registry, rt)
	p.stats.creations.Inc()
	return rt, nil
}

// lookupLocked finds the tracker owning raw by identity.
func (p *Pool[T]) lookupLocked(raw T) *tracker[T] {
	for _, rt := range p.registry {
		if rt.resource == raw {
			return rt
		}
	}
	return nil
}

func (p *Pool[T]) removeLocked(rt *tracker[T]) {
	for i, cur := range p.registry {
		if cur == rt {
			p.registry = append(p.registry[:i], p.registry[i+1:]...)
			return
		}
	}
}
