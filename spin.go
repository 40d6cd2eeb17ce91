// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"time"

	"code.hybscloud.com/spin"
)

// Spin busy-polls the readiness probe with CPU pause hints.
// It holds no state and never involves the scheduler, so it is always
// available; CPU use while waiting is unbounded.
type Spin struct{}

// Init is a no-op.
func (*Spin) Init() {}

// Wait polls ready until it reports true.
func (*Spin) Wait(ready func() bool) {
	sw := spin.Wait{}
	for !ready() {
		sw.Once()
	}
}

// WaitUntil polls ready until it reports true or deadline passes.
func (*Spin) WaitUntil(ready func() bool, deadline time.Time) bool {
	sw := spin.Wait{}
	for !ready() {
		if !time.Now().Before(deadline) {
			return ready()
		}
		sw.Once()
	}
	return true
}

// Notify is a no-op: the waiter observes changes by polling.
func (*Spin) Notify() {}
