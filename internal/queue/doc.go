// Package queue
// Author: momentics <momentics@gmail.com>
//
// Bounded blocking FIFO used as the pool's idle store. Supports non-blocking
// push/pop and a timed blocking pop; it is the synchronization point between
// releasing and acquiring goroutines.
package queue
