// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Run links a fresh port pair, runs both Cont-world protocols, and returns
// both results. Interleaves execution of both sides on the calling
// goroutine using adaptive backoff (iox.Backoff) when neither side can
// make progress. Does not spawn goroutines.
//
// A side that completes has its outbound direction closed, so a peer still
// receiving observes ErrDisconnected instead of waiting forever. The
// returned error joins the failures of both sides.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B, error) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr is Run for Expr-world protocols.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B, error) {
	pa, pb := Link()
	defer pa.Close()
	defer pb.Close()

	resultA, suspA := stepEither(a)
	resultB, suspB := stepEither(b)
	if suspA == nil {
		pa.ctx.tx.Close()
	}
	if suspB == nil {
		pb.ctx.tx.Close()
	}

	var bo iox.Backoff
	for suspA != nil || suspB != nil {
		progress := false
		if suspA != nil {
			var err error
			resultA, suspA, err = advanceEither(pa, suspA)
			if err == nil {
				progress = true
				if suspA == nil {
					pa.ctx.tx.Close()
				}
			}
		}
		if suspB != nil {
			var err error
			resultB, suspB, err = advanceEither(pb, suspB)
			if err == nil {
				progress = true
				if suspB == nil {
					pb.ctx.tx.Close()
				}
			}
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}

	va, errA := unwrapEither(resultA)
	vb, errB := unwrapEither(resultB)
	return va, vb, errors.Join(errA, errB)
}
