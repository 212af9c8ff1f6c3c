// Package pool
// Author: momentics <momentics@gmail.com>
//
// Thread-safe bounded resource pool with overflow creation, blocking
// acquisition with timeout, health-check-driven replacement and reclamation
// of abandoned resources via weak liveness references.
// See pool.go for the acquisition algorithm and tracker.go for liveness
// tracking details.
package pool
