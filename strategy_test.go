// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/handoff"
)

var strategies = []struct {
	name string
	new  func() handoff.Strategy
}{
	{"Spin", func() handoff.Strategy { return &handoff.Spin{} }},
	{"Park", func() handoff.Strategy { return &handoff.Park{} }},
	{"Signal", func() handoff.Strategy { return &handoff.Signal{} }},
}

func newStrategy(t *testing.T, mk func() handoff.Strategy) handoff.Strategy {
	t.Helper()
	s := mk()
	s.Init()
	return s
}

func TestStrategyReadyImmediately(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			s := newStrategy(t, tc.new)
			ready := func() bool { return true }
			within(t, time.Second, func() { s.Wait(ready) })
			if !s.WaitUntil(ready, time.Now().Add(-time.Second)) {
				t.Fatal("WaitUntil with passed deadline ignored a true probe")
			}
		})
	}
}

func TestStrategyNotifyWakes(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			s := newStrategy(t, tc.new)
			var flag atomic.Bool
			go func() {
				time.Sleep(10 * time.Millisecond)
				flag.Store(true)
				s.Notify()
			}()
			within(t, 5*time.Second, func() { s.Wait(flag.Load) })
			if !flag.Load() {
				t.Fatal("Wait returned before the probe was true")
			}
		})
	}
}

func TestStrategyWaitUntilNotified(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			s := newStrategy(t, tc.new)
			var flag atomic.Bool
			go func() {
				time.Sleep(5 * time.Millisecond)
				flag.Store(true)
				s.Notify()
			}()
			if !s.WaitUntil(flag.Load, time.Now().Add(5*time.Second)) {
				t.Fatal("WaitUntil timed out despite notify")
			}
		})
	}
}

func TestStrategyWaitUntilExpires(t *testing.T) {
	const d = 20 * time.Millisecond
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			s := newStrategy(t, tc.new)
			never := func() bool { return false }
			start := time.Now()
			if s.WaitUntil(never, start.Add(d)) {
				t.Fatal("WaitUntil reported ready for a false probe")
			}
			if elapsed := time.Since(start); elapsed < d {
				t.Fatalf("WaitUntil returned after %v, want at least %v", elapsed, d)
			}
		})
	}
}

// TestStrategyStaleNotify checks that a notification left over from an
// earlier round does not satisfy a later wait on its own.
func TestStrategyStaleNotify(t *testing.T) {
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			s := newStrategy(t, tc.new)
			s.Notify()
			s.Notify()
			never := func() bool { return false }
			if s.WaitUntil(never, time.Now().Add(10*time.Millisecond)) {
				t.Fatal("stale notification satisfied WaitUntil")
			}
		})
	}
}

// TestStrategyNoLostWakeup alternates the roles many times with the
// notifier racing the waiter's registration.
func TestStrategyNoLostWakeup(t *testing.T) {
	skipRace(t)
	const rounds = 2000
	for _, tc := range strategies {
		t.Run(tc.name, func(t *testing.T) {
			s := newStrategy(t, tc.new)
			var seq atomic.Uint64
			done := make(chan struct{})
			go func() {
				defer close(done)
				for i := uint64(1); i <= rounds; i++ {
					for seq.Load() != 2*i-1 {
						runtime.Gosched()
					}
					seq.Store(2 * i)
					s.Notify()
				}
			}()
			within(t, 10*time.Second, func() {
				for i := uint64(1); i <= rounds; i++ {
					seq.Store(2*i - 1)
					want := 2 * i
					s.Wait(func() bool { return seq.Load() == want })
				}
				<-done
			})
		})
	}
}

func TestBackendName(t *testing.T) {
	if got := handoff.Backend(); got != wantBackend {
		t.Fatalf("Backend() = %q, want %q", got, wantBackend)
	}
}
