// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts of hioload-pool: the pool surface, the caller handle,
// the resource factory and the user-supplied lifecycle hooks.
// Implementations live in the pool package; this package carries no logic.
package api
