// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "time"

// Strategy is the blocking mechanism behind Recv and RecvTimeout.
//
// A strategy serves exactly one waiter and any number of notifiers.
// The waiter passes a non-destructive readiness probe; the strategy returns
// once the probe reports true. Notifiers call Notify after every state
// change the waiter may be interested in (publish, close).
//
// Implementations must not lose a wakeup: a Notify that happens after the
// state change and concurrently with Wait must make Wait observe the probe
// as true.
//
// Spin, Park and Signal implement Strategy. The façades use the variant
// selected at build time (see Backend) without dynamic dispatch.
type Strategy interface {
	// Init prepares the strategy. It must be called before first use.
	Init()
	// Wait blocks until ready reports true.
	Wait(ready func() bool)
	// WaitUntil blocks until ready reports true or deadline passes.
	// Returns false only if the deadline passed and ready is still false.
	WaitUntil(ready func() bool, deadline time.Time) bool
	// Notify wakes the waiter, if any.
	Notify()
}

var (
	_ Strategy = (*Spin)(nil)
	_ Strategy = (*Park)(nil)
	_ Strategy = (*Signal)(nil)
)

// Backend returns the name of the strategy compiled into the façades:
// "signal", "park" or "spin".
func Backend() string {
	return backend
}
