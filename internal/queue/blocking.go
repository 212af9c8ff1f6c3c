// File: internal/queue/blocking.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded blocking FIFO over an eapache ring queue. Waiters park on a
// 1-buffered signal channel; a popper that leaves items behind re-signals so
// no wakeup is lost between concurrent consumers.

package queue

import (
	"sync"
	"time"

	ring "github.com/eapache/queue"
)

// Blocking is a bounded FIFO with non-blocking and timed operations.
// All methods are safe for concurrent use.
type Blocking[T any] struct {
	mu     sync.Mutex
	items  *ring.Queue
	bound  int
	notify chan struct{}
}

// NewBlocking allocates a queue holding at most capacity items.
func NewBlocking[T any](capacity int) *Blocking[T] {
	if capacity < 1 {
		panic("queue: capacity must be at least 1")
	}
	return &Blocking[T]{
		items:  ring.New(),
		bound:  capacity,
		notify: make(chan struct{}, 1),
	}
}

// TryPush appends v; returns false if the queue is full.
func (b *Blocking[T]) TryPush(v T) bool {
	b.mu.Lock()
	if b.items.Length() >= b.bound {
		b.mu.Unlock()
		return false
	}
	b.items.Add(v)
	b.mu.Unlock()
	b.signal()
	return true
}

// TryPop removes and returns the head; ok is false if the queue is empty.
func (b *Blocking[T]) TryPop() (v T, ok bool) {
	b.mu.Lock()
	v, ok = b.popLocked()
	b.mu.Unlock()
	return v, ok
}

// Pop removes and returns the head, waiting for an item to arrive when the
// queue is empty. A negative timeout waits indefinitely; a zero timeout fails
// immediately on an empty queue.
func (b *Blocking[T]) Pop(timeout time.Duration) (T, bool) {
	var expire <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expire = timer.C
	}
	for {
		b.mu.Lock()
		v, ok := b.popLocked()
		b.mu.Unlock()
		if ok {
			return v, true
		}
		select {
		case <-b.notify:
		case <-expire:
			var zero T
			return zero, false
		}
	}
}

// Len returns the number of queued items.
func (b *Blocking[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items.Length()
}

// Cap returns the queue bound.
func (b *Blocking[T]) Cap() int {
	return b.bound
}

func (b *Blocking[T]) popLocked() (T, bool) {
	var zero T
	if b.items.Length() == 0 {
		return zero, false
	}
	v := b.items.Remove().(T)
	if b.items.Length() > 0 {
		b.signal()
	}
	return v, true
}

func (b *Blocking[T]) signal() {
	select {
	case b.notify <- struct{}{}:
	default:
	}
}
