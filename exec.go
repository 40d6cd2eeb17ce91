// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// portHandler handles port effects and kont error effects.
// Port ops wait past the would-block boundary with iox.Backoff;
// disconnection and Throw short-circuit with Left.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type portHandler[R any] struct {
	ctx    *portContext
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler. Dispatch order: Port → Error.
func (h portHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if pop, ok := op.(portDispatcher); ok {
		v, err := dispatchWait(h.ctx, pop)
		if err != nil {
			return kont.Left[error, R](err), false
		}
		return v, true
	}
	if eop, ok := op.(errorDispatcher); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, R](h.errCtx.Err), false
		}
		return v, true
	}
	panic("handoff: unhandled effect in portHandler")
}

// dispatchWait retries DispatchPort until it succeeds or fails with
// something other than a would-block signal, backing off in between.
func dispatchWait(ctx *portContext, pop portDispatcher) (kont.Resumed, error) {
	var bo iox.Backoff
	for {
		v, err := pop.DispatchPort(ctx)
		if err == nil {
			return v, nil
		}
		if !IsWouldBlock(err) {
			return nil, err
		}
		bo.Wait()
	}
}

// Exec runs a Cont-world protocol on a pre-created port.
// Blocks past backpressure via adaptive backoff (iox.Backoff), without
// spawning goroutines. Returns ErrDisconnected if the peer went away
// mid-protocol, or the error passed to kont.ThrowError.
func Exec[R any](p *Port, protocol kont.Eff[R]) (R, error) {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := portHandler[R]{ctx: &p.ctx, errCtx: &errCtx}
	return unwrapEither(kont.Handle(wrapped, h))
}

// ExecExpr runs an Expr-world protocol on a pre-created port.
// Same blocking and error behavior as Exec.
func ExecExpr[R any](p *Port, protocol kont.Expr[R]) (R, error) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := portHandler[R]{ctx: &p.ctx, errCtx: &errCtx}
	return unwrapEither(kont.HandleExpr(wrapped, h))
}

func unwrapEither[R any](e kont.Either[error, R]) (R, error) {
	if err, ok := e.GetLeft(); ok {
		var zero R
		return zero, err
	}
	r, _ := e.GetRight()
	return r, nil
}
