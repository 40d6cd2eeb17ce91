// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "code.hybscloud.com/kont"

// portCapacity is the bounded capacity of each port direction.
// 4 keeps a short protocol burst from hitting backpressure while the
// peer is still stepping.
const portCapacity = 4

// portContext holds the transport of one port: an outbound and an inbound
// single-producer single-consumer queue pair.
type portContext struct {
	tx *QueueSender[any]
	rx *QueueReceiver[any]
}

// portDispatcher is the structural interface for port operations.
// DispatchPort is non-blocking: it returns an error matching
// iox.ErrWouldBlock when the queue cannot make progress, and
// ErrDisconnected when the peer is gone.
type portDispatcher interface {
	DispatchPort(ctx *portContext) (kont.Resumed, error)
}

// errorDispatcher is the structural interface of kont error operations
// with error as the error type.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
}

// Port is one side of a linked pair, the endpoint protocols run against.
type Port struct {
	ctx    portContext
	serial Serial
}

// Link creates a connected pair of ports. Each direction is a bounded
// queue pair (see NewQueue), so a Close on one side lets the other drain
// what was sent and then observe ErrDisconnected.
func Link() (*Port, *Port) {
	s := nextSerial()
	abTx, abRx := NewQueue[any](portCapacity)
	baTx, baRx := NewQueue[any](portCapacity)
	a := &Port{ctx: portContext{tx: abTx, rx: baRx}, serial: s}
	b := &Port{ctx: portContext{tx: baTx, rx: abRx}, serial: s}
	return a, b
}

// Serial returns the serial shared by both ports of the link.
func (p *Port) Serial() Serial {
	return p.serial
}

// Close closes both directions of this port. Values still queued toward
// this port are discarded. Idempotent.
func (p *Port) Close() {
	p.ctx.tx.Close()
	p.ctx.rx.Close()
}
