// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import (
	"context"
	"sort"
	"time"
	"unsafe"
)

// popUsable pops the front clause off l, skipping (and discarding) any
// clause whose chooseGroup has already been resolved by a competing
// rendezvous elsewhere. It returns nil once l holds nothing usable. A
// plain Send/Recv clause has no group and is always usable; a Choose
// clause can lose a race to a sibling clause parked on a different Pair,
// and must be dropped rather than handed to a second caller.
func popUsable(l *clauseList) *clause {
	for {
		c := l.front()
		if c == nil {
			return nil
		}
		l.erase(c)
		if c.group != nil && !c.group.claim() {
			continue
		}
		return c
	}
}

// drainList resolves every usable clause remaining in l with err. Used by
// Close and Done to poison all parked senders/receivers.
func drainList(l *clauseList, err error) {
	for {
		c := popUsable(l)
		if c == nil {
			return
		}
		deliver(c, err)
	}
}

// deliver sends a non-blocking result to c's resolve channel. The channel
// is always buffered(1) and is only ever written to by whichever one
// caller won c's group, so the send never contends; the select/default
// guards the case where, despite that invariant, this is reached twice
// for the same clause (for instance a caller that both times reads
// c.linked as true in a narrow window — kept as a safety net, not a
// relied-upon path).
func deliver(c *clause, err error) {
	select {
	case c.resolve <- waitResult{idx: c.idx, err: err}:
	default:
	}
}

// lockPairs locks every distinct Pair in pairs, in a fixed address order,
// so that two concurrent multi-pair operations (two Choose calls sharing
// some of the same channels) can never deadlock against each other.
func lockPairs(pairs []*Pair) {
	ordered := uniquePairs(pairs)
	for _, p := range ordered {
		p.mu.Lock()
	}
}

// unlockPairs unlocks every distinct Pair in pairs, in the reverse of
// lockPairs's order.
func unlockPairs(pairs []*Pair) {
	ordered := uniquePairs(pairs)
	for i := len(ordered) - 1; i >= 0; i-- {
		ordered[i].mu.Unlock()
	}
}

// uniquePairs returns the distinct elements of pairs sorted by address,
// so repeated calls with the same set always produce the same order.
func uniquePairs(pairs []*Pair) []*Pair {
	seen := make(map[*Pair]struct{}, len(pairs))
	out := make([]*Pair, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return uintptr(unsafe.Pointer(out[i])) < uintptr(unsafe.Pointer(out[j]))
	})
	return out
}

// parkSingle links c onto list and blocks until c is resolved by a peer's
// fast path, a timer, Close/Done, or ctx cancellation. The caller must
// already hold pair.mu (having just found nothing usable on the fast
// path) and must never call parkSingle with an Immediate deadline;
// parkSingle pushes c and releases the lock itself, so no window opens
// between the fast-path check and the clause actually being registered.
func parkSingle(ctx context.Context, pair *Pair, list *clauseList, c *clause, deadline Deadline) error {
	c.resolve = make(chan waitResult, 1)

	list.pushBack(c)
	pair.mu.Unlock()

	var timer *time.Timer
	if d, bounded := deadline.timer(); bounded {
		timer = time.AfterFunc(d, func() {
			pair.mu.Lock()
			linked := c.linked
			if linked {
				c.unlink()
			}
			pair.mu.Unlock()
			if linked {
				deliver(c, ErrTimedOut)
			}
		})
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	select {
	case res := <-c.resolve:
		return res.err
	case <-ctx.Done():
		pair.mu.Lock()
		linked := c.linked
		if linked {
			c.unlink()
		}
		pair.mu.Unlock()
		if linked {
			return ErrCancelled
		}
		// Already resolved by a peer or the timer in the narrow window
		// between ctx firing and the lock above; honor that outcome
		// instead of discarding it.
		return (<-c.resolve).err
	}
}
