// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sess provides session-typed communication protocols via algebraic effects
// on [code.hybscloud.com/kont].
//
// Protocols are composed of typed operations dispatched on a session endpoint.
//
// # Architecture
//
//   - Transport: an unbuffered rendezvous via [code.hybscloud.com/dill]. [New] creates an [Endpoint] pair backed by two [code.hybscloud.com/dill.Pair]s, one carrying data and one carrying the select/offer choice.
//   - Non-blocking: Operations return [code.hybscloud.com/iox.ErrWouldBlock] when probed with [code.hybscloud.com/dill.Immediate] and no peer is present to complete the handoff.
//   - Execution: Dual-world API supporting closure-based (Cont-world) and defunctionalized (Expr-world) evaluation.
//   - Error Handling: Session operations block or probe exactly as in the non-error variants, while error operations short-circuit returning [code.hybscloud.com/kont.Either].
//
// # API Topologies
//
//   - Operations: [Send], [Recv], [Close], [SelectL], [SelectR], [Offer]. Endpoint delegation is [Send]/[Recv] of [*Endpoint].
//   - Cont-world: [SendThen], [RecvBind], [CloseDone], [SelectLThen], [SelectRThen], [OfferBranch].
//   - Expr-world: Zero-allocation variants like [ExprSendThen], [ExprRecvBind], etc. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative protocols.
//
// # Integration
//
//   - Stepping: [Step] and [Advance] (or [StepError]/[AdvanceError]) probe with [code.hybscloud.com/dill.Immediate], evaluating one effect at a time so a proactor loop can retry on [code.hybscloud.com/iox.ErrWouldBlock] instead of blocking.
//   - Blocking: [Exec], [Run] (and Error/Expr variants) dispatch with [code.hybscloud.com/dill.Never], parking the calling goroutine on the rendezvous until a peer arrives.
//
// # Example
//
//	epA, epB := sess.New()
//	protocol := sess.ExprSendThen(42, sess.ExprCloseDone[struct{}](struct{}{}))
//	go sess.Exec(epB, sess.RecvBind(func(int) kont.Eff[struct{}] {
//		return kont.Return(struct{}{})
//	}))
//	_, susp := sess.Step[struct{}](protocol)
//	for susp != nil {
//		var err error
//		if _, susp, err = sess.Advance(epA, susp); err != nil {
//			continue // retry on ErrWouldBlock until epB's goroutine is ready to receive
//		}
//	}
package sess
