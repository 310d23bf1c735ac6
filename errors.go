// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import "errors"

// Status errors returned by Send, Recv, Choose, Close and Done. The set is
// closed and flat: a plain sentinel per distinguishable failure mode,
// checked with errors.Is, rather than a wrapped/annotated error tree.
var (
	// ErrInvalidArgument is returned for malformed inputs: a nil storage
	// pointer passed to MakeInPlace, or a Choose call with no clauses, a
	// clause with a nil Endpoint, or an unrecognized OpKind.
	ErrInvalidArgument = errors.New("dill: invalid argument")

	// ErrCancelled is returned when the calling context is already
	// cancelled at entry, or is cancelled while the operation is parked.
	// No side effect is performed for the entry-time check.
	ErrCancelled = errors.New("dill: cancelled")

	// ErrBadHandle is returned when a Handle does not resolve to any
	// registered object.
	ErrBadHandle = errors.New("dill: bad handle")

	// ErrNotSupported is returned when a Handle resolves to an object
	// that is not a channel endpoint.
	ErrNotSupported = errors.New("dill: not supported")

	// ErrBrokenPipe is returned when the relevant direction of a channel
	// has been poisoned by Done, or the pair has been fully closed.
	ErrBrokenPipe = errors.New("dill: broken pipe")

	// ErrSizeMismatch is returned to both parties of a rendezvous attempt
	// when their payload lengths disagree. Neither buffer is modified.
	ErrSizeMismatch = errors.New("dill: size mismatch")

	// ErrTimedOut is returned when a deadline elapses (or Immediate finds
	// no ready peer) before a rendezvous completes.
	ErrTimedOut = errors.New("dill: timed out")

	// ErrOutOfMemory is returned by Make on allocation failure. Go's
	// allocator panics rather than returning an error on exhaustion, so
	// in practice Make never produces this status; it is kept for
	// completeness of the status taxonomy.
	ErrOutOfMemory = errors.New("dill: out of memory")
)
