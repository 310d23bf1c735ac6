// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import (
	"context"
	"time"
)

// Clause describes one branch of a Choose call: a send or receive attempt
// on Endpoint carrying Buf.
type Clause struct {
	Endpoint *Endpoint
	Op       OpKind
	Buf      []byte
}

// Choose waits on several send/receive clauses at once and completes
// whichever one rendezvouses first, returning its index into clauses. If
// none can proceed immediately and deadline is Immediate, it returns
// (-1, ErrTimedOut) without side effects. It performs an initial in-order
// scan for an immediate match, then (if none, and the deadline allows
// waiting) parks every clause and waits for exactly one to be resolved.
func Choose(ctx context.Context, clauses []Clause, deadline Deadline) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, ErrCancelled
	}
	if len(clauses) == 0 {
		return -1, ErrInvalidArgument
	}
	for i, cl := range clauses {
		if cl.Endpoint == nil {
			return i, ErrInvalidArgument
		}
		switch cl.Op {
		case OpSend, OpRecv:
		default:
			return i, ErrInvalidArgument
		}
	}

	pairs := make([]*Pair, len(clauses))
	for i, cl := range clauses {
		pairs[i] = cl.Endpoint.pair
	}

	// Held continuously from the scan through registering every clause:
	// releasing it between the two steps would let a concurrent Send/Recv
	// on one of the pairs land in the gap and park against a clause this
	// Choose never registered, or vice versa.
	lockPairs(pairs)
	if idx, err, matched := scanClauses(clauses, pairs); matched {
		return idx, err
	}

	if deadline.immediate() {
		unlockPairs(pairs)
		return -1, ErrTimedOut
	}

	return parkChoose(ctx, clauses, pairs, deadline)
}

// scanClauses performs the initial in-order scan for an immediate match.
// Callers must already hold every Pair in pairs; scanClauses unlocks them
// itself before returning on a match, but leaves them locked when it
// returns matched == false so the caller can register clauses without a
// gap.
func scanClauses(clauses []Clause, pairs []*Pair) (idx int, err error, matched bool) {
	for i, cl := range clauses {
		ep := cl.Endpoint
		switch cl.Op {
		case OpSend:
			target := ep.pair.other(ep)
			if target.done {
				unlockPairs(pairs)
				return i, ErrBrokenPipe, true
			}
			peer := popUsable(&target.in)
			if peer == nil {
				continue
			}
			if len(cl.Buf) != len(peer.val) {
				unlockPairs(pairs)
				deliver(peer, ErrSizeMismatch)
				return i, ErrSizeMismatch, true
			}
			copy(peer.val, cl.Buf)
			unlockPairs(pairs)
			deliver(peer, nil)
			return i, nil, true
		case OpRecv:
			if ep.done {
				unlockPairs(pairs)
				return i, ErrBrokenPipe, true
			}
			peer := popUsable(&ep.out)
			if peer == nil {
				continue
			}
			if len(cl.Buf) != len(peer.val) {
				unlockPairs(pairs)
				deliver(peer, ErrSizeMismatch)
				return i, ErrSizeMismatch, true
			}
			copy(cl.Buf, peer.val)
			unlockPairs(pairs)
			deliver(peer, nil)
			return i, nil, true
		}
	}
	return -1, nil, false
}

// parkChoose links every clause onto its target list, arms one timer for
// the whole group, and waits for exactly one clause to be resolved by a
// peer, the timer, or ctx cancellation. Callers must already hold every
// Pair in pairs (the continuation of scanClauses's unbroken critical
// section); parkChoose registers every clause and releases the lock
// itself before waiting.
func parkChoose(ctx context.Context, clauses []Clause, pairs []*Pair, deadline Deadline) (int, error) {
	group := &chooseGroup{}
	resolve := make(chan waitResult, 1)
	parked := make([]*clause, len(clauses))

	for i, cl := range clauses {
		c := &clause{val: cl.Buf, idx: i, group: group, resolve: resolve}
		parked[i] = c
		ep := cl.Endpoint
		if cl.Op == OpSend {
			ep.pair.other(ep).out.pushBack(c)
		} else {
			ep.in.pushBack(c)
		}
	}
	unlockPairs(pairs)

	var timer *time.Timer
	if d, bounded := deadline.timer(); bounded {
		timer = time.AfterFunc(d, func() {
			if !group.claim() {
				return
			}
			unlinkParked(pairs, parked)
			select {
			case resolve <- waitResult{idx: -1, err: ErrTimedOut}:
			default:
			}
		})
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	select {
	case res := <-resolve:
		return res.idx, res.err
	case <-ctx.Done():
		if group.claim() {
			unlinkParked(pairs, parked)
			return -1, ErrCancelled
		}
		res := <-resolve
		return res.idx, res.err
	}
}

// unlinkParked removes every still-linked clause in parked from its list.
// Called only after winning the group's single resolution slot, so no
// clause here can be concurrently popped by a peer anymore.
func unlinkParked(pairs []*Pair, parked []*clause) {
	lockPairs(pairs)
	for _, c := range parked {
		if c.linked {
			c.unlink()
		}
	}
	unlockPairs(pairs)
}
