// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"strconv"
	"time"
)

// oneshot holds the cell, the waiter and the serial of a one-shot pair
// in a single allocation shared by both handles.
type oneshot[T any] struct {
	cell   Cell[T]
	w      waiter
	serial Serial
}

// Sender is the publishing half of a one-shot pair.
type Sender[T any] struct {
	p *oneshot[T]
}

// Receiver is the receiving half of a one-shot pair.
type Receiver[T any] struct {
	p *oneshot[T]
}

// New creates a connected one-shot pair. Exactly one value can pass from
// the Sender to the Receiver.
//
// Blocking in Recv uses the strategy selected at build time (see Backend).
func New[T any]() (*Sender[T], *Receiver[T]) {
	p := &oneshot[T]{serial: nextSerial()}
	p.cell.Init(true)
	p.w.Init()
	return &Sender[T]{p: p}, &Receiver[T]{p: p}
}

// Send publishes v and wakes the receiver. Never blocks.
//
// On failure the returned *SendError carries v back: ErrDisconnected if
// the receiver (or this sender) has closed, ErrFull if a value was already
// sent.
func (s *Sender[T]) Send(v T) error {
	if err := s.p.cell.Publish(v); err != nil {
		return &SendError[T]{Value: v, Err: err}
	}
	s.p.w.Notify()
	return nil
}

// Close drops the sender. A value already sent stays retrievable;
// otherwise the receiver observes ErrDisconnected. Idempotent.
func (s *Sender[T]) Close() {
	s.p.cell.CloseTx()
	s.p.w.Notify()
}

// Disconnected reports whether the receiver can no longer get a value.
func (s *Sender[T]) Disconnected() bool {
	return s.p.cell.Disconnected()
}

// Serial returns the serial shared by both handles of the pair.
func (s *Sender[T]) Serial() Serial {
	return s.p.serial
}

func (s *Sender[T]) String() string {
	return "handoff.Sender#" + strconv.FormatUint(uint64(s.p.serial), 10)
}

// Recv blocks until the value arrives or the sender is gone.
// Returns ErrDisconnected if no value will ever arrive.
func (r *Receiver[T]) Recv() (T, error) {
	p := r.p
	for {
		v, err := p.cell.Take()
		if err != ErrEmpty {
			return v, err
		}
		p.w.Wait(p.cell.Ready)
	}
}

// TryRecv takes the value if it is ready. Never blocks.
// Returns ErrEmpty if nothing was sent yet, ErrDisconnected if nothing
// will ever arrive.
func (r *Receiver[T]) TryRecv() (T, error) {
	return r.p.cell.Take()
}

// RecvTimeout is Recv bounded by d. Returns ErrTimeout once at least d has
// elapsed without a value. A value that lands at the deadline is
// delivered rather than reported as a timeout.
func (r *Receiver[T]) RecvTimeout(d time.Duration) (T, error) {
	p := r.p
	deadline := time.Now().Add(d)
	for {
		v, err := p.cell.Take()
		if err != ErrEmpty {
			return v, err
		}
		if !p.w.WaitUntil(p.cell.Ready, deadline) {
			v, err = p.cell.Take()
			if err == ErrEmpty {
				return v, ErrTimeout
			}
			return v, err
		}
	}
}

// Close drops the receiver. A pending value is discarded (Disposer values
// are disposed) and later sends fail with ErrDisconnected. Idempotent.
func (r *Receiver[T]) Close() {
	r.p.cell.CloseRx()
}

// Serial returns the serial shared by both handles of the pair.
func (r *Receiver[T]) Serial() Serial {
	return r.p.serial
}

func (r *Receiver[T]) String() string {
	return "handoff.Receiver#" + strconv.FormatUint(uint64(r.p.serial), 10)
}
