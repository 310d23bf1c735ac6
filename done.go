// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import "code.hybscloud.com/dill/internal/handle"

// Close releases ep. The first Close of a pair's two halves only marks
// that half closed; the second — from whichever goroutine makes it,
// possibly concurrently — resumes every clause still parked on either
// half with ErrBrokenPipe, then deregisters both handles. A half-channel
// only tears down once its peer has also let go.
//
// Calling Close a second time on an Endpoint that has already been
// closed is a caller bug, not a case this package tries to detect.
func (ep *Endpoint) Close() {
	pair := ep.pair
	n := pair.closed.Add(1)
	if n < 2 {
		return
	}

	pair.mu.Lock()
	drainList(&pair.ep[0].in, ErrBrokenPipe)
	drainList(&pair.ep[0].out, ErrBrokenPipe)
	drainList(&pair.ep[1].in, ErrBrokenPipe)
	drainList(&pair.ep[1].out, ErrBrokenPipe)
	pair.mu.Unlock()

	handle.Remove(pair.ep[0].handle)
	handle.Remove(pair.ep[1].handle)
}

// Done poisons the opposite half of ep's pair: every current and future
// Send or Recv against that half fails with ErrBrokenPipe, and every
// clause currently parked on it is resumed with that error immediately.
// Done always targets the other half.
func (ep *Endpoint) Done() error {
	pair := ep.pair
	target := pair.other(ep)

	pair.mu.Lock()
	if target.done {
		pair.mu.Unlock()
		return ErrBrokenPipe
	}
	target.done = true
	drainList(&target.in, ErrBrokenPipe)
	drainList(&target.out, ErrBrokenPipe)
	pair.mu.Unlock()
	return nil
}
