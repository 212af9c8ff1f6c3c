// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides test doubles for the pool contracts: a scripted
// factory, recording hooks and a trivial resource type. Intended for
// consumers testing code that embeds a pool.
package fake

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/momentics/hioload-pool/api"
)

// Resource is a trivial pooled resource for tests.
type Resource struct {
	ID     int
	Broken bool
}

// Factory is a scripted api.Factory producing sequentially numbered
// resources. Errors are delivered in FIFO order before normal creations
// resume.
type Factory struct {
	mu   sync.Mutex
	next int
	errs []error

	Created atomic.Int64
}

// FailWith queues errs to be returned by upcoming factory calls.
func (f *Factory) FailWith(errs ...error) {
	f.mu.Lock()
	f.errs = append(f.errs, errs...)
	f.mu.Unlock()
}

// New is the api.Factory entry point.
func (f *Factory) New(args map[string]any) (*Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	f.next++
	f.Created.Inc()
	return &Resource{ID: f.next}, nil
}

var _ api.Factory[*Resource] = (&Factory{}).New

// Hooks records ping and normalize invocations. Ping fails for resources
// with Broken set.
type Hooks struct {
	Pings      atomic.Int64
	Normalizes atomic.Int64
}

func (h *Hooks) Ping(r *Resource) bool {
	h.Pings.Inc()
	return !r.Broken
}

func (h *Hooks) Normalize(r *Resource) {
	h.Normalizes.Inc()
}
