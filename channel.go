// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dill

import (
	"context"
	"errors"
	"sync"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/dill/internal/handle"
)

// Handle is the integer form of an Endpoint, usable by callers that want
// to pass a channel half by value (store it in a struct field, send it
// through another channel) instead of holding the *Endpoint directly.
// Resolve it back with FromHandle or Query.
type Handle = handle.Handle

// chanTokenType is the private type dill.Query uses to assert that a
// Handle actually refers to a dill channel endpoint.
type chanTokenType struct{}

var chanToken = chanTokenType{}

// Endpoint is one half of a rendezvous channel pair. The zero Endpoint is
// not usable; obtain one from Make or MakeInPlace.
type Endpoint struct {
	pair  *Pair
	index uint8

	in  clauseList // clauses wanting to receive from this half
	out clauseList // clauses wanting to send to this half

	done   bool
	handle handle.Handle
}

// Pair holds both halves of a channel together with the mutex guarding
// their shared waiter-list state. A Pair may be embedded by value (see
// MakeInPlace) or heap-allocated by Make; either way both halves and the
// lock live in one allocation.
type Pair struct {
	mu  sync.Mutex
	ep  [2]Endpoint
	mem bool // true when the caller supplied storage (MakeInPlace)

	// closed counts how many of the two halves have had Close called.
	// The second call tears both halves down; counting avoids needing to
	// dereference a possibly-already-freed peer to check its state.
	closed atomix.Uint32
}

func (p *Pair) other(ep *Endpoint) *Endpoint {
	return &p.ep[1-ep.index]
}

func (p *Pair) init(mem bool) {
	p.mem = mem
	p.ep[0] = Endpoint{pair: p, index: 0}
	p.ep[1] = Endpoint{pair: p, index: 1}
}

// MakeInPlace builds a connected channel pair inside caller-supplied
// storage, avoiding a separate heap allocation for the Pair itself. ctx is
// checked once up front: a channel cannot be created from an
// already-cancelled context.
func MakeInPlace(ctx context.Context, storage *Pair) (*Endpoint, *Endpoint, error) {
	if storage == nil {
		return nil, nil, ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, ErrCancelled
	}
	storage.init(true)
	a, b := &storage.ep[0], &storage.ep[1]
	a.handle = handle.Make(a)
	b.handle = handle.Make(b)
	return a, b, nil
}

// Make allocates a new connected channel pair on the heap.
func Make(ctx context.Context) (*Endpoint, *Endpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, ErrCancelled
	}
	p := &Pair{}
	p.init(false)
	a, b := &p.ep[0], &p.ep[1]
	a.handle = handle.Make(a)
	b.handle = handle.Make(b)
	return a, b, nil
}

// Handle returns the integer handle registered for ep, usable with
// FromHandle and dill.Query from code that only holds the integer form.
func (ep *Endpoint) Handle() Handle {
	return ep.handle
}

// Query implements handle.VFS. It returns ep itself when token is the
// dill channel token, and ErrNotSupported otherwise.
func (ep *Endpoint) Query(token any) (any, error) {
	if token == chanToken {
		return ep, nil
	}
	return nil, ErrNotSupported
}

// FromHandle resolves h back to its *Endpoint. It fails with ErrBadHandle
// if h is unknown, or ErrNotSupported if h refers to some other kind of
// registered object.
func FromHandle(h Handle) (*Endpoint, error) {
	v, err := handle.Query(h, chanToken)
	if err != nil {
		if errors.Is(err, handle.ErrNotFound) {
			return nil, ErrBadHandle
		}
		return nil, ErrNotSupported
	}
	ep, ok := v.(*Endpoint)
	if !ok {
		return nil, ErrNotSupported
	}
	return ep, nil
}

// Query resolves h to its *Endpoint, the package-level form of
// (*Endpoint).Query for callers that only have a Handle.
func Query(h Handle) (*Endpoint, error) {
	return FromHandle(h)
}
