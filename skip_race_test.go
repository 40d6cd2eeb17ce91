// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package handoff_test

import "testing"

// skipRace skips tests that hand values across goroutines through a Cell
// or an lfq queue. The race detector tracks per-variable happens-before
// and cannot see the cross-variable memory ordering (store-release on the
// state word, plain access to the value), producing false positives.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: slot handoff uses cross-variable memory ordering")
}
