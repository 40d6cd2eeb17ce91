// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package handoff provides value handoff between goroutines whose
// observable behavior does not depend on how waiting is implemented.
//
// A handoff is a pair of handles sharing one slot. Sends never block;
// receives block only in Recv and RecvTimeout, through a blocking
// strategy chosen at build time. Closing a handle is the only
// cancellation: it wakes a blocked peer once, and the peer observes
// [ErrDisconnected] after any value already sent has been taken.
//
// # Architecture
//
//   - Core: [Cell] is an allocation-free single-value slot driven by CAS on
//     a [code.hybscloud.com/atomix] state word.
//   - Strategies: [Spin] busy-polls, [Park] parks the waiter behind a CAS
//     token, [Signal] delegates the notification path to a runtime channel.
//   - One-shot: [New] creates a [Sender]/[Receiver] pair for exactly one value.
//   - Queues: [NewQueue] and [NewMPSCQueue] carry many values through bounded
//     lock-free queues from [code.hybscloud.com/lfq]; the strategy only
//     supplies wakeups.
//   - Combinators: [Collector], [Distributor] and [Composer] work on any
//     [Producer] or [Consumer].
//   - Protocols: [Send], [Recv] and [Close] are [code.hybscloud.com/kont]
//     effects over a [Port] pair made by [Link]; run them with [Exec], [Run],
//     or step them with [Step] and [Advance].
//
// # Build Tags
//
// The strategy behind Recv is fixed at compile time. Precedence is
// Signal, then Park, then Spin:
//
//	(none)                                  Signal
//	handoff_nochannel                       Park
//	handoff_nochannel,handoff_nothread      Spin
//	handoff_minimal                         Spin
//
// The API is identical in every configuration, and the same test suite
// runs under each:
//
//	go test ./...
//	go test -tags handoff_nochannel ./...
//	go test -tags handoff_minimal ./...
//
// [Backend] reports the compiled choice.
//
// # Errors
//
// [ErrFull] and [ErrEmpty] are retry-later signals and match
// [code.hybscloud.com/iox.ErrWouldBlock] under errors.Is. [ErrDisconnected]
// and [ErrTimeout] are final for the call that returns them. A failed send
// returns a [*SendError] that hands the rejected value back.
//
// # Example
//
//	tx, rx := handoff.New[int]()
//	go func() {
//		_ = tx.Send(42)
//	}()
//	v, err := rx.Recv() // 42, nil
package handoff
