// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import "context"

// Send hands buf to a matching Recv on the other half of ep's pair. The
// rendezvous is synchronous: Send only returns once a receiver has copied
// buf (or an error has occurred); no intermediate buffering ever happens.
//
// Sending always targets the opposite half of the pair: ep retargets to
// its peer before touching any queue, so a send and a receive issued on
// the two ends of the same pair line up on the same waiter lists.
func (ep *Endpoint) Send(ctx context.Context, buf []byte, deadline Deadline) error {
	if err := ctx.Err(); err != nil {
		return ErrCancelled
	}
	pair := ep.pair
	target := pair.other(ep)

	pair.mu.Lock()
	if target.done {
		pair.mu.Unlock()
		return ErrBrokenPipe
	}
	if peer := popUsable(&target.in); peer != nil {
		if len(buf) != len(peer.val) {
			pair.mu.Unlock()
			deliver(peer, ErrSizeMismatch)
			return ErrSizeMismatch
		}
		copy(peer.val, buf)
		pair.mu.Unlock()
		deliver(peer, nil)
		return nil
	}

	if deadline.immediate() {
		pair.mu.Unlock()
		return ErrTimedOut
	}

	c := &clause{val: buf}
	return parkSingle(ctx, pair, &target.out, c, deadline)
}
