// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	eaqueue "github.com/eapache/queue"
)

// ComposeFunc builds a composite from the leading accumulated elements.
//
// It returns the composite and the number of leading elements it used.
// Returning an error matching ErrEmpty means more elements are needed and
// nothing is used. Any other error is a failed composition; the used
// elements are discarded so the next attempt starts after them.
type ComposeFunc[E, G any] func(elements []E) (composite G, used int, err error)

// ComposeError wraps a failed composition.
type ComposeError struct {
	Err error
}

func (e *ComposeError) Error() string {
	return "handoff: compose: " + e.Err.Error()
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}

// Composer is a Consumer of composites assembled from the elements of
// another Consumer.
//
// Each TryRecv drains the element consumer until it fails, keeping every
// element it got, then attempts one composition. An incomplete composite
// reports the element consumer's failure, so an empty source still reads
// as ErrEmpty and a disconnected one as ErrDisconnected.
//
// A Composer is not safe for concurrent use.
type Composer[E, G any] struct {
	consumer Consumer[E]
	compose  ComposeFunc[E, G]
	elements *eaqueue.Queue
	scratch  []E
}

// NewComposer returns a Composer reading elements from consumer.
func NewComposer[E, G any](consumer Consumer[E], compose ComposeFunc[E, G]) *Composer[E, G] {
	return &Composer[E, G]{
		consumer: consumer,
		compose:  compose,
		elements: eaqueue.New(),
	}
}

// Pending returns the number of buffered elements not yet composed.
func (c *Composer[E, G]) Pending() int {
	return c.elements.Length()
}

// TryRecv implements Consumer.
func (c *Composer[E, G]) TryRecv() (G, error) {
	var zero G
	var failure error
	for {
		e, err := c.consumer.TryRecv()
		if err != nil {
			failure = err
			break
		}
		c.elements.Add(e)
	}

	c.scratch = c.scratch[:0]
	for i := range c.elements.Length() {
		c.scratch = append(c.scratch, c.elements.Get(i).(E))
	}
	g, used, err := c.compose(c.scratch)
	clear(c.scratch)
	if err != nil && IsWouldBlock(err) {
		return zero, failure
	}
	for ; used > 0 && c.elements.Length() > 0; used-- {
		c.elements.Remove()
	}
	if err != nil {
		return zero, &ComposeError{Err: err}
	}
	return g, nil
}
