// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import "context"

// Recv copies a payload from a matching Send on the other half of ep's
// pair into buf. Unlike Send, Recv operates directly on ep rather than
// its peer: a receiver waits on its own half's queues and never
// retargets its half-channel argument.
func (ep *Endpoint) Recv(ctx context.Context, buf []byte, deadline Deadline) error {
	if err := ctx.Err(); err != nil {
		return ErrCancelled
	}
	pair := ep.pair

	pair.mu.Lock()
	if ep.done {
		pair.mu.Unlock()
		return ErrBrokenPipe
	}
	if peer := popUsable(&ep.out); peer != nil {
		if len(buf) != len(peer.val) {
			pair.mu.Unlock()
			deliver(peer, ErrSizeMismatch)
			return ErrSizeMismatch
		}
		copy(buf, peer.val)
		pair.mu.Unlock()
		deliver(peer, nil)
		return nil
	}

	if deadline.immediate() {
		pair.mu.Unlock()
		return ErrTimedOut
	}

	c := &clause{val: buf}
	return parkSingle(ctx, pair, &ep.in, c, deadline)
}
