// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"code.hybscloud.com/kont"
)

// Send is the effect operation for sending a value of type T.
// Perform(Send[T]{Value: v}) sends v to the peer port.
type Send[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchPort handles Send on the port transport.
// Non-blocking: returns ErrFull if the outbound queue is at capacity,
// ErrDisconnected if the peer closed its inbound side.
func (s Send[T]) DispatchPort(ctx *portContext) (kont.Resumed, error) {
	if err := ctx.tx.Send(s.Value); err != nil {
		return nil, err.(*SendError[any]).Err
	}
	return struct{}{}, nil
}

// Recv is the effect operation for receiving a value of type T.
// Perform(Recv[T]{}) receives a typed value from the peer.
type Recv[T any] struct {
	kont.Phantom[T]
}

// DispatchPort handles Recv on the port transport.
// Non-blocking: returns ErrEmpty if nothing is queued yet,
// ErrDisconnected once the peer closed and everything it sent was taken.
func (Recv[T]) DispatchPort(ctx *portContext) (kont.Resumed, error) {
	v, err := ctx.rx.TryRecv()
	if err != nil {
		return nil, err
	}
	return v.(T), nil
}

// Close is the effect operation for ending the outbound direction.
// Perform(Close{}) lets the peer drain what was sent and then observe
// ErrDisconnected. Never blocks.
type Close struct {
	kont.Phantom[struct{}]
}

// DispatchPort handles Close on the port transport.
func (Close) DispatchPort(ctx *portContext) (kont.Resumed, error) {
	ctx.tx.Close()
	return struct{}{}, nil
}
