// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dill provides an unbuffered, synchronous, bidirectional
// rendezvous channel: a Send only returns once a matching Recv has copied
// its payload directly out of the sender's buffer, with no intermediate
// queue ever holding a message in flight.
//
// # Architecture
//
//   - Pairs: [Make] and [MakeInPlace] create a connected pair of
//     [*Endpoint] values, one per end of the channel; either end can
//     send and receive.
//   - Single-shot ops: [Endpoint.Send] and [Endpoint.Recv] wait for one
//     matching peer, honoring a [Deadline] and a context.Context.
//   - Multi-way wait: [Choose] waits on several [Clause] values at once
//     and completes whichever rendezvous is ready first.
//   - Poisoning: [Endpoint.Done] fails all current and future operations
//     against the opposite half with [ErrBrokenPipe]; [Endpoint.Close]
//     releases a half, tearing the pair down once both halves have let
//     go.
//   - Handles: every [*Endpoint] is also registered under an integer
//     handle.Handle, resolved back with [Query] or [FromHandle].
//
// # Example
//
//	ctx := context.Background()
//	a, b, _ := dill.Make(ctx)
//	go func() { _ = a.Send(ctx, []byte("hi"), dill.Never) }()
//	buf := make([]byte, 2)
//	_ = b.Recv(ctx, buf, dill.Never)
package dill
