// File: adapters/netconn/netconn.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ready-made pool binding for net.Conn resources: a dialing factory driven
// by the pool's captured argument map, a read-probe ping and a
// deadline-clearing normalize hook.

package netconn

import (
	"net"
	"time"

	"github.com/juju/errors"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/pool"
)

// Argument map keys consumed by Factory.
const (
	ArgNetwork = "network"
	ArgAddress = "address"
)

// Factory returns a pool factory that dials args[ArgNetwork]/args[ArgAddress]
// with the given dial timeout.
func Factory(dialTimeout time.Duration) api.Factory[net.Conn] {
	return func(args map[string]any) (net.Conn, error) {
		network, _ := args[ArgNetwork].(string)
		address, _ := args[ArgAddress].(string)
		if network == "" || address == "" {
			return nil, errors.Errorf("netconn: factory args need %q and %q", ArgNetwork, ArgAddress)
		}
		conn, err := net.DialTimeout(network, address, dialTimeout)
		if err != nil {
			return nil, errors.Annotate(err, "netconn: dial")
		}
		return conn, nil
	}
}

// Ping probes an idle connection with a short read deadline. A deadline
// error means the peer is silent but the connection is up; anything else
// marks the connection dead. Only use it on connections that are idle at the
// protocol level, the probe consumes a byte if one is pending.
func Ping(conn net.Conn) bool {
	if err := conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return false
	}
	var one [1]byte
	_, err := conn.Read(one[:])
	_ = conn.SetReadDeadline(time.Time{})
	if err == nil {
		return true
	}
	nerr, ok := err.(net.Error)
	return ok && nerr.Timeout()
}

// Normalize clears any deadlines a previous checkout may have left behind.
func Normalize(conn net.Conn) {
	_ = conn.SetDeadline(time.Time{})
}

// NewPool assembles a connection pool for network/address with the adapter's
// hooks installed. Extra options are applied after the adapter defaults, so
// callers can still override any of them.
func NewPool(network, address string, capacity int, opts ...pool.Option[net.Conn]) (*pool.Pool[net.Conn], error) {
	base := []pool.Option[net.Conn]{
		pool.WithFactoryArgs[net.Conn](map[string]any{
			ArgNetwork: network,
			ArgAddress: address,
		}),
		pool.WithPing[net.Conn](Ping),
		pool.WithNormalize[net.Conn](Normalize),
	}
	return pool.New(Factory(10*time.Second), capacity, append(base, opts...)...)
}
