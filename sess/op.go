// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sess

import (
	"context"

	"code.hybscloud.com/kont"
)

// background is used for every dill call from this package: session
// cancellation is expressed by closing endpoints (Close/Done), not by
// context, so there is never a live context to thread through here.
var background = context.Background()

// Send is the effect operation for sending a value of type T.
// Perform(Send[T]{Value: v}) sends v to the peer endpoint.
type Send[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchSession handles Send on the session transport: the value is
// boxed into the pair's shared slot, then a fixed-size marker crosses the
// dill data channel purely to drive the rendezvous and its happens-before
// guarantee.
func (s Send[T]) DispatchSession(ctx *sessionContext) (kont.Resumed, error) {
	ctx.shared.dataSlot = s.Value
	if err := ctx.data.Send(background, sessionMarker, ctx.deadline); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Recv is the effect operation for receiving a value of type T.
// Perform(Recv[T]{}) receives a typed value from the peer.
type Recv[T any] struct {
	kont.Phantom[T]
}

// DispatchSession handles Recv on the session transport.
func (Recv[T]) DispatchSession(ctx *sessionContext) (kont.Resumed, error) {
	buf := make([]byte, len(sessionMarker))
	if err := ctx.data.Recv(background, buf, ctx.deadline); err != nil {
		return nil, err
	}
	return ctx.shared.dataSlot.(T), nil
}

// Close is the effect operation for closing the session.
// Perform(Close{}) releases both of this endpoint's dill channels. Once
// both sides of the session have closed, any operation still parked on
// either channel fails with dill.ErrBrokenPipe; one side's Close alone
// does not fail the peer's operations.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchSession handles Close on the session transport. Never blocks:
// Close always succeeds regardless of ctx.deadline.
func (Close) DispatchSession(ctx *sessionContext) (kont.Resumed, error) {
	ctx.data.Close()
	ctx.choice.Close()
	return struct{}{}, nil
}

// offerLeft and offerRight are pre-boxed Resumed values for Offer dispatch.
// Either[struct{}, struct{}] is non-zero-size (contains isRight bool),
// so boxing into Resumed (any) allocates without pre-allocation.
var (
	offerLeft  kont.Resumed = kont.Left[struct{}, struct{}](struct{}{})
	offerRight kont.Resumed = kont.Right[struct{}](struct{}{})
)

// SelectL is the effect operation for choosing the left branch.
// Perform(SelectL{}) signals the left choice to the peer.
type SelectL struct {
	kont.Phantom[struct{}]
}

// DispatchSession handles SelectL on the session transport.
func (SelectL) DispatchSession(ctx *sessionContext) (kont.Resumed, error) {
	ctx.shared.choiceSlot = true
	if err := ctx.choice.Send(background, sessionMarker, ctx.deadline); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// SelectR is the effect operation for choosing the right branch.
// Perform(SelectR{}) signals the right choice to the peer.
type SelectR struct {
	kont.Phantom[struct{}]
}

// DispatchSession handles SelectR on the session transport.
func (SelectR) DispatchSession(ctx *sessionContext) (kont.Resumed, error) {
	ctx.shared.choiceSlot = false
	if err := ctx.choice.Send(background, sessionMarker, ctx.deadline); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

// Offer is the effect operation for receiving a branch choice from the peer.
// Perform(Offer{}) receives the peer's Left or Right selection.
type Offer struct {
	kont.Phantom[kont.Either[struct{}, struct{}]]
}

// DispatchSession handles Offer on the session transport.
// true → Left (peer selected left), false → Right (peer selected right).
func (Offer) DispatchSession(ctx *sessionContext) (kont.Resumed, error) {
	buf := make([]byte, len(sessionMarker))
	if err := ctx.choice.Recv(background, buf, ctx.deadline); err != nil {
		return nil, err
	}
	if ctx.shared.choiceSlot.(bool) {
		return offerLeft, nil
	}
	return offerRight, nil
}
