// File: pool/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "github.com/juju/errors"

var (
	// ErrInvalidConfig is returned by New for an unusable configuration.
	ErrInvalidConfig = errors.New("pool: invalid configuration")

	// ErrPoolDepleted is returned by Get when no resource became available
	// within the configured timeout.
	ErrPoolDepleted = errors.New("pool: depleted, no resource became available")

	// ErrUnknownResource is returned by Put for a resource this pool did
	// not create.
	ErrUnknownResource = errors.New("pool: resource was not created by this pool")

	// ErrPoolType is reserved for decorated handles returned to a pool
	// they do not belong to.
	ErrPoolType = errors.New("pool: handle does not belong to this pool")
)
