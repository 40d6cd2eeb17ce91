// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "code.hybscloud.com/kont"

// Reify turns a port protocol built from SendThen, RecvBind and CloseDone
// into a stepped one. Each Send, Recv or Close then surfaces as a
// suspension, which is how Advance drives a port one effect at a time.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect is the inverse of Reify: a stepped port protocol becomes one that
// Exec and Run can drive to completion.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
