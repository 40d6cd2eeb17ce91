// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a protocol until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance dispatches the suspended port operation on p.
//
// On success (nil error), the suspension is consumed and the protocol
// advances to the next effect or completion.
// On a would-block error (ErrFull, ErrEmpty), the suspension is returned
// unconsumed and may be retried after the peer makes progress.
// On ErrDisconnected, the suspension is discarded and nil is returned in
// its place: the protocol cannot continue.
func Advance[R any](p *Port, susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	pop, ok := susp.Op().(portDispatcher)
	if !ok {
		panic("handoff: unhandled effect in Advance")
	}
	v, err := pop.DispatchPort(&p.ctx)
	if err != nil {
		var zero R
		if IsWouldBlock(err) {
			return zero, susp, err
		}
		susp.Discard()
		return zero, nil, err
	}
	result, next := susp.Resume(v)
	return result, next, nil
}

// stepEither is Step with the result lifted into Either[error, R], so that
// disconnection and Throw can end the protocol with Left.
func stepEither[R any](protocol kont.Expr[R]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.StepExpr(wrapped)
}

// advanceEither dispatches port and error operations for stepEither
// protocols. Only a would-block signal is returned as an error; every
// other failure completes the protocol with Left.
func advanceEither[R any](p *Port, susp *kont.Suspension[kont.Either[error, R]]) (kont.Either[error, R], *kont.Suspension[kont.Either[error, R]], error) {
	if pop, ok := susp.Op().(portDispatcher); ok {
		v, err := pop.DispatchPort(&p.ctx)
		if err != nil {
			if IsWouldBlock(err) {
				var zero kont.Either[error, R]
				return zero, susp, err
			}
			susp.Discard()
			return kont.Left[error, R](err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	if eop, ok := susp.Op().(errorDispatcher); ok {
		var ctx kont.ErrorContext[error]
		v, _ := eop.DispatchError(&ctx)
		if ctx.HasErr {
			susp.Discard()
			return kont.Left[error, R](ctx.Err), nil, nil
		}
		result, next := susp.Resume(v)
		return result, next, nil
	}
	panic("handoff: unhandled effect in Run")
}
