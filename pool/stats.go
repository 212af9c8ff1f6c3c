// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Activity counters. Counters are updated lock-free on the hot path and
// sampled into an api.Stats value on demand.

package pool

import (
	"go.uber.org/atomic"

	"github.com/momentics/hioload-pool/api"
)

type statCounters struct {
	gets      atomic.Int64
	puts      atomic.Int64
	hits      atomic.Int64
	creations atomic.Int64
	timeouts  atomic.Int64
	harvested atomic.Int64
	evictions atomic.Int64
}

// Stats returns a point-in-time snapshot of pool counters. The snapshot is
// not transactionally consistent with concurrent Get/Put calls.
func (p *Pool[T]) Stats() api.Stats {
	size := p.Size()
	idle := p.idle.Len()
	inUse := size - idle
	if inUse < 0 {
		inUse = 0
	}
	return api.Stats{
		Size:      size,
		Idle:      idle,
		InUse:     inUse,
		Gets:      p.stats.gets.Load(),
		Puts:      p.stats.puts.Load(),
		Hits:      p.stats.hits.Load(),
		Creations: p.stats.creations.Load(),
		Timeouts:  p.stats.timeouts.Load(),
		Harvested: p.stats.harvested.Load(),
		Evictions: p.stats.evictions.Load(),
	}
}
