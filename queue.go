// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"strconv"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// rxGone marks the receiver as closed in the in-flight word. The low bits
// count sends that passed the closure check but have not returned yet.
const rxGone uint64 = 1 << 63

// queue is the shared state of a queue pair. Values travel through a
// bounded lock-free lfq queue; the waiter only supplies the wakeup.
type queue[T any] struct {
	q        lfq.Queue[T]
	spsc     lfq.SPSC[T]
	w        waiter
	senders  atomix.Uint32
	inflight atomix.Uint64
	multi    bool
	serial   Serial
}

// QueueSender is a producing handle of a queue pair.
type QueueSender[T any] struct {
	q      *queue[T]
	closed atomix.Uint32
}

// QueueReceiver is the consuming handle of a queue pair.
type QueueReceiver[T any] struct {
	q *queue[T]
}

// NewQueue creates a bounded single-producer single-consumer queue pair
// backed by lfq.SPSC. Capacity rounds up to the next power of 2; it must
// be at least 2.
func NewQueue[T any](capacity int) (*QueueSender[T], *QueueReceiver[T]) {
	q := &queue[T]{serial: nextSerial()}
	q.spsc.Init(capacity)
	q.q = &q.spsc
	return newQueuePair(q)
}

// NewMPSCQueue creates a bounded multi-producer single-consumer queue pair.
// Additional producers are obtained with Clone. The CAS-based lfq
// variant is used so that a drained queue never reports empty while values
// remain.
func NewMPSCQueue[T any](capacity int) (*QueueSender[T], *QueueReceiver[T]) {
	q := &queue[T]{serial: nextSerial(), multi: true}
	q.q = lfq.NewMPSCSeq[T](capacity)
	return newQueuePair(q)
}

func newQueuePair[T any](q *queue[T]) (*QueueSender[T], *QueueReceiver[T]) {
	q.w.Init()
	q.senders.StoreRelease(1)
	return &QueueSender[T]{q: q}, &QueueReceiver[T]{q: q}
}

// Send enqueues v and wakes the receiver. Never blocks.
//
// A QueueSender belongs to one goroutine at a time: Send must not race
// with Close on the same handle. Goroutines producing into an MPSC queue
// each take their own handle with Clone.
//
// On failure the returned *SendError carries v back: ErrFull if the queue
// is at capacity, ErrDisconnected if the receiver or this sender has
// closed.
func (s *QueueSender[T]) Send(v T) error {
	q := s.q
	if s.closed.LoadAcquire() != 0 {
		return &SendError[T]{Value: v, Err: ErrDisconnected}
	}
	if q.inflight.Add(1)&rxGone != 0 {
		q.inflight.Add(^uint64(0))
		return &SendError[T]{Value: v, Err: ErrDisconnected}
	}
	err := q.q.Enqueue(&v)
	q.inflight.Add(^uint64(0))
	if err != nil {
		return &SendError[T]{Value: v, Err: ErrFull}
	}
	q.w.Notify()
	return nil
}

// Clone returns another producer for the same queue. Only queues made by
// NewMPSCQueue accept more than one producer. Cloning a closed sender
// yields a closed sender.
func (s *QueueSender[T]) Clone() *QueueSender[T] {
	q := s.q
	if !q.multi {
		panic("handoff: Clone on a single-producer queue")
	}
	c := &QueueSender[T]{q: q}
	if s.closed.LoadAcquire() != 0 {
		c.closed.StoreRelease(1)
		return c
	}
	for {
		n := q.senders.LoadAcquire()
		if n == 0 {
			c.closed.StoreRelease(1)
			return c
		}
		if q.senders.CompareAndSwapAcqRel(n, n+1) {
			return c
		}
	}
}

// Close drops this producer. When the last producer closes, the receiver
// drains what is queued and then observes ErrDisconnected. Idempotent.
func (s *QueueSender[T]) Close() {
	if !s.closed.CompareAndSwapAcqRel(0, 1) {
		return
	}
	q := s.q
	if q.senders.Add(^uint32(0)) == 0 {
		if d, ok := q.q.(lfq.Drainer); ok {
			d.Drain()
		}
		q.w.Notify()
	}
}

// Disconnected reports whether Send on this handle fails with
// ErrDisconnected: the receiver has closed, or this sender has.
//
// Sender.Disconnected on a one-shot pair also waits for a pending value
// to be taken before reporting a closed sender. A queue has no length to
// observe without dequeuing, so values still queued after Close are not
// considered here; the receiver drains them either way.
func (s *QueueSender[T]) Disconnected() bool {
	return s.closed.LoadAcquire() != 0 || s.q.inflight.LoadAcquire()&rxGone != 0
}

// Cap returns the queue capacity.
func (s *QueueSender[T]) Cap() int {
	return s.q.q.Cap()
}

// Serial returns the serial shared by all handles of the pair.
func (s *QueueSender[T]) Serial() Serial {
	return s.q.serial
}

func (s *QueueSender[T]) String() string {
	return "handoff.QueueSender#" + strconv.FormatUint(uint64(s.q.serial), 10)
}

// TryRecv dequeues the oldest value. Never blocks.
// Returns ErrEmpty if producers are alive but nothing is queued,
// ErrDisconnected if every producer closed and the queue is drained.
func (r *QueueReceiver[T]) TryRecv() (T, error) {
	q := r.q
	var zero T
	if q.inflight.LoadAcquire()&rxGone != 0 {
		return zero, ErrDisconnected
	}
	if v, err := q.q.Dequeue(); err == nil {
		return v, nil
	}
	if q.senders.LoadAcquire() != 0 {
		return zero, ErrEmpty
	}
	// Producers are gone; anything they enqueued happened before the
	// close, so one more attempt sees it.
	if v, err := q.q.Dequeue(); err == nil {
		return v, nil
	}
	return zero, ErrDisconnected
}

// Recv blocks until a value is queued or every producer is gone.
func (r *QueueReceiver[T]) Recv() (T, error) {
	v, err := r.TryRecv()
	if err != ErrEmpty {
		return v, err
	}
	r.q.w.Wait(func() bool {
		v, err = r.TryRecv()
		return err != ErrEmpty
	})
	return v, err
}

// RecvTimeout is Recv bounded by d. Returns ErrTimeout once at least d has
// elapsed with nothing queued.
func (r *QueueReceiver[T]) RecvTimeout(d time.Duration) (T, error) {
	deadline := time.Now().Add(d)
	v, err := r.TryRecv()
	if err != ErrEmpty {
		return v, err
	}
	if r.q.w.WaitUntil(func() bool {
		v, err = r.TryRecv()
		return err != ErrEmpty
	}, deadline) {
		return v, err
	}
	v, err = r.TryRecv()
	if err == ErrEmpty {
		return v, ErrTimeout
	}
	return v, err
}

// Close drops the receiver. Sends that already passed the closure check
// are waited out, then every queued value is discarded (Disposer values
// are disposed). Later sends fail with ErrDisconnected. Idempotent.
func (r *QueueReceiver[T]) Close() {
	q := r.q
	for {
		s := q.inflight.LoadAcquire()
		if s&rxGone != 0 {
			return
		}
		if q.inflight.CompareAndSwapAcqRel(s, s|rxGone) {
			break
		}
	}
	var bo iox.Backoff
	for q.inflight.LoadAcquire() != rxGone {
		bo.Wait()
	}
	for {
		v, err := q.q.Dequeue()
		if err != nil {
			return
		}
		dispose(v)
	}
}

// Serial returns the serial shared by all handles of the pair.
func (r *QueueReceiver[T]) Serial() Serial {
	return r.q.serial
}

func (r *QueueReceiver[T]) String() string {
	return "handoff.QueueReceiver#" + strconv.FormatUint(uint64(r.q.serial), 10)
}
