// Package platform wraps device capabilities behind injectable
// interfaces so renderers can be exercised without a real device present.
package platform

import "errors"

// ErrUnavailable marks a capability the hosting platform does not provide.
// Callers handle it explicitly; it is never surfaced as a crash.
var ErrUnavailable = errors.New("platform capability unavailable")
