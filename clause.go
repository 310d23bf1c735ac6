// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import "sync/atomic"

// OpKind distinguishes a send clause from a receive clause in a Choose
// call. Callers build []Clause literals with these constants.
type OpKind uint8

const (
	// OpSend requests the send side of a rendezvous.
	OpSend OpKind = iota
	// OpRecv requests the receive side of a rendezvous.
	OpRecv
)

func (k OpKind) String() string {
	switch k {
	case OpSend:
		return "send"
	case OpRecv:
		return "recv"
	default:
		return "invalid"
	}
}

// waitResult is what deliver (from a peer, a timer, or Close/Done) sends to a
// parked goroutine through its clause's resolve channel.
type waitResult struct {
	idx int
	err error
}

// clause is a transient descriptor for one pending send or receive,
// linked into exactly one half-channel's waiter list while parked.
type clause struct {
	prev, next *clause      // intrusive link (clauseList)
	owner      *clauseList  // list currently holding this clause, nil when unlinked
	linked     bool

	val []byte // caller's payload buffer, borrowed for the duration of the wait
	idx int    // this clause's index within its Choose call (0 for plain Send/Recv)

	group   *chooseGroup // nil for a plain Send/Recv clause
	resolve chan waitResult // buffered(1); deliver sends the outcome here
}

// unlink removes c from its current waiter list, if any. Safe to call on
// an already-unlinked clause. The caller must hold the mutex guarding
// c.owner's pair.
func (c *clause) unlink() {
	if !c.linked {
		return
	}
	c.owner.erase(c)
}

// chooseGroup is shared by every clause registered by one Choose call.
// resolved is the single point of truth deciding which of the (possibly
// many, possibly concurrently-arriving) candidate rendezvous actually
// wins: exactly one CompareAndSwap(false, true) across the whole group
// succeeds, so exactly one clause is ever allowed to complete a handoff.
type chooseGroup struct {
	resolved atomic.Bool
}

// claim attempts to win the group's single resolution slot. Returns true
// for at most one caller across the group's lifetime.
func (g *chooseGroup) claim() bool {
	return g.resolved.CompareAndSwap(false, true)
}
