// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff_test

import (
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/handoff"
	"code.hybscloud.com/kont"
)

// execExpr drives a protocol to completion on p via a Step+Advance loop.
// Retries on would-block (peer not ready yet); stops on any other error.
// Used by stepping tests to exercise the non-blocking path.
func execExpr[R any](p *handoff.Port, protocol kont.Expr[R]) (R, error) {
	result, susp := handoff.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = handoff.Advance(p, susp)
		if err != nil && !handoff.IsWouldBlock(err) {
			var zero R
			return zero, err
		}
	}
	return result, nil
}

// tracked counts how many times values sharing its counter were disposed.
type tracked struct {
	id       int
	disposed *atomic.Int32
}

func (t tracked) Dispose() {
	t.disposed.Add(1)
}

// within fails the test if fn does not return within d.
func within(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %v", d)
	}
}
