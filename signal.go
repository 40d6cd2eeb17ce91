// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "time"

// Signal delegates the notification path to a runtime channel.
//
// The channel holds at most one pending token. Notify deposits a token
// without blocking; Wait re-probes after every token. A token left behind
// by an earlier Notify only costs one extra probe, and a Notify racing
// with Wait always leaves a token to receive, so no wakeup is lost.
type Signal struct {
	ch chan struct{}
}

// Init allocates the token channel.
func (s *Signal) Init() {
	s.ch = make(chan struct{}, 1)
}

// Wait receives tokens until ready reports true.
func (s *Signal) Wait(ready func() bool) {
	for !ready() {
		<-s.ch
	}
}

// WaitUntil receives tokens until ready reports true or deadline passes.
func (s *Signal) WaitUntil(ready func() bool, deadline time.Time) bool {
	if ready() {
		return true
	}
	d := time.Until(deadline)
	if d <= 0 {
		return ready()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	for {
		select {
		case <-s.ch:
			if ready() {
				return true
			}
		case <-t.C:
			return ready()
		}
	}
}

// Notify deposits a token if none is pending.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}
