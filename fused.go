// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"code.hybscloud.com/kont"
)

// SendThen puts v on the port's outbound queue, then runs next. The send
// waits out a full queue and ends the protocol with ErrDisconnected once
// the peer port is closed.
func SendThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	send := kont.Perform(Send[T]{Value: v})
	return kont.Then(send, next)
}

// RecvBind takes the next value of type T from the port's inbound queue
// and continues with f(value). Values queued before the peer closed are
// still delivered.
func RecvBind[T, B any](f func(T) kont.Eff[B]) kont.Eff[B] {
	recv := kont.Perform(Recv[T]{})
	return kont.Bind(recv, f)
}

// CloseDone closes the port's outbound queue and finishes with result.
// The peer drains what was sent before it observes ErrDisconnected.
func CloseDone[A any](result A) kont.Eff[A] {
	done := kont.Pure(result)
	return kont.Then(kont.Perform(Close{}), done)
}

// Loop repeats a port exchange. step gets the current state and yields
// Left(next) to go round again or Right(result) to stop.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		result, _ := e.GetRight()
		return kont.Pure(result)
	})
}
