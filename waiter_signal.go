// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !handoff_minimal && !handoff_nochannel

package handoff

// Channel capability present: the notification path is delegated to a
// runtime channel. Takes precedence over Park and Spin.
type waiter = Signal

const backend = "signal"
