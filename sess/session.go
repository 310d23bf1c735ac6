// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sess

import (
	"context"
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"

	"code.hybscloud.com/dill"
)

// sessionMarker is the fixed-length payload exchanged on the wire for
// every session step. The actual value being communicated never crosses
// the rendezvous as bytes; it is boxed into the shared slot the two sides
// of a session already agree on (see sessionShared below), and the dill
// rendezvous itself supplies only the happens-before ordering that makes
// reading that slot safe.
var sessionMarker = []byte{0}

// sessionShared is the pair-wide state two session endpoints agree on
// out of band from dill's byte-oriented Send/Recv. dataSlot carries
// whatever value a Send/Recv step is passing; choiceSlot carries a
// SelectL/SelectR/Offer branch choice. Each slot is only ever written
// before, and read after, a rendezvous on its corresponding dill pair, so
// the pair's own mutex establishes the happens-before edge that makes the
// access race-free.
type sessionShared struct {
	dataSlot   any
	choiceSlot any
}

// sessionContext holds the transport for a single endpoint: one dill pair
// carries typed values, a second carries branch choices, and deadline
// selects between the blocking and non-blocking calling conventions
// DispatchSession is asked to use (dill.Never for Exec/Run, dill.Immediate
// for Step/Advance).
type sessionContext struct {
	data     *dill.Endpoint
	choice   *dill.Endpoint
	shared   *sessionShared
	deadline dill.Deadline
}

// sessionDispatcher is the structural interface for session operations.
// DispatchSession honors ctx.deadline: Immediate makes it a non-blocking
// probe that reports iox.ErrWouldBlock when no peer is ready, Never makes
// it a genuine block until the rendezvous completes.
type sessionDispatcher interface {
	DispatchSession(ctx *sessionContext) (kont.Resumed, error)
}

// sessionHandler implements kont.Handler for session effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type sessionHandler[R any] struct {
	ctx *sessionContext
}

// Dispatch implements kont.Handler via structural interface assertion.
// Dispatches once with a Never deadline: a real rendezvous channel
// blocks on its own, so there is nothing left for the handler to
// back off and retry.
func (h sessionHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	sop, ok := op.(sessionDispatcher)
	if !ok {
		panic("sess: unhandled effect in sessionHandler")
	}
	h.ctx.deadline = dill.Never
	v, err := sop.DispatchSession(h.ctx)
	if err != nil {
		panic(err)
	}
	return v, true
}

// Endpoint represents one side of a session-typed channel pair.
// Transport is backed by two dill rendezvous channel pairs: one for
// values, one for branch choices.
type Endpoint struct {
	ctx    sessionContext
	serial Serial
}

// Serial returns the serial number assigned to this endpoint's session.
func (ep *Endpoint) Serial() Serial {
	return ep.serial
}

// New creates a connected pair of session endpoints, backed by a dill
// data channel and a dill choice channel sharing one sessionShared slot
// pair.
//
// Session operations honor the deadline set by their caller: Exec/Run
// dispatch with dill.Never and genuinely block until the rendezvous
// completes; Step/Advance dispatch with dill.Immediate and report
// iox.ErrWouldBlock when no peer is present yet, for callers driving a
// proactor loop.
func New() (*Endpoint, *Endpoint) {
	s := nextSerial()
	background := context.Background()

	dataA, dataB, _ := dill.Make(background)
	choiceA, choiceB, _ := dill.Make(background)
	shared := &sessionShared{}

	a := &Endpoint{
		ctx:    sessionContext{data: dataA, choice: choiceA, shared: shared},
		serial: s,
	}
	b := &Endpoint{
		ctx:    sessionContext{data: dataB, choice: choiceB, shared: shared},
		serial: s,
	}
	return a, b
}

// dispatchImmediate probes sop once with an Immediate deadline, mapping
// dill.ErrTimedOut to iox.ErrWouldBlock so callers built against the
// proactor-style ErrWouldBlock contract keep working unchanged.
func dispatchImmediate(ctx *sessionContext, sop sessionDispatcher) (kont.Resumed, error) {
	ctx.deadline = dill.Immediate
	v, err := sop.DispatchSession(ctx)
	if err != nil {
		if isTimedOut(err) {
			return nil, iox.ErrWouldBlock
		}
		return nil, err
	}
	return v, nil
}

func isTimedOut(err error) bool {
	return errors.Is(err, dill.ErrTimedOut)
}
