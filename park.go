// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"time"

	"code.hybscloud.com/atomix"
)

const (
	parkIdle uint32 = iota
	parkWaiting
)

// Park suspends the waiting goroutine until a notifier unparks it.
//
// The waiter registers its token with a CAS, probes readiness once more,
// and only then parks. A publish that lands between the first probe and
// the registration is caught by the second probe; one that lands after
// the registration finds the token and unparks. Notify consumes the token
// with a CAS, so each park is released exactly once and notifiers skip
// the wake entirely when nobody is parked.
type Park struct {
	state atomix.Uint32
	wake  chan struct{}
}

// Init allocates the wake slot.
func (p *Park) Init() {
	p.wake = make(chan struct{}, 1)
}

// Wait parks until ready reports true.
func (p *Park) Wait(ready func() bool) {
	for !ready() {
		p.state.CompareAndSwapAcqRel(parkIdle, parkWaiting)
		if ready() {
			p.cancel()
			return
		}
		<-p.wake
	}
}

// WaitUntil parks until ready reports true or deadline passes.
func (p *Park) WaitUntil(ready func() bool, deadline time.Time) bool {
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
		p.state.CompareAndSwapAcqRel(parkIdle, parkWaiting)
		if ready() {
			p.cancel()
			return true
		}
		select {
		case <-p.wake:
			if ready() {
				return true
			}
		case <-t.C:
			p.cancel()
			return ready()
		}
	}
}

// cancel withdraws the token. If a notifier already claimed it, the
// notifier is committed to a wake, which is drained here.
func (p *Park) cancel() {
	if !p.state.CompareAndSwapAcqRel(parkWaiting, parkIdle) {
		<-p.wake
	}
}

// Notify unparks the registered waiter, if any.
func (p *Park) Notify() {
	if p.state.CompareAndSwapAcqRel(parkWaiting, parkIdle) {
		p.wake <- struct{}{}
	}
}
