// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sess

import (
	"code.hybscloud.com/kont"
)

// Run creates a session pair and runs both Cont-world protocols to
// completion, returning both results.
//
// A rendezvous only ever completes once one side is genuinely blocked
// waiting for the other, so both sides can't be driven by non-blocking
// polls interleaved on a single goroutine. One side has to run on a
// second goroutine here. Side B runs that way; side A runs on the
// calling goroutine, and Run waits for both to finish.
func Run[A, B any](a kont.Eff[A], b kont.Eff[B]) (A, B) {
	return RunExpr(Reify(a), Reify(b))
}

// RunExpr creates a session pair and runs both Expr-world protocols to
// completion, returning both results. See Run for why this spawns one
// goroutine.
func RunExpr[A, B any](a kont.Expr[A], b kont.Expr[B]) (A, B) {
	epA, epB := New()

	var resultB B
	done := make(chan struct{})
	go func() {
		resultB = ExecExpr(epB, b)
		close(done)
	}()

	resultA := ExecExpr(epA, a)
	<-done
	return resultA, resultB
}
