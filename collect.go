// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "errors"

// Collector consumes from several consumers in registration order.
//
// TryRecv returns the first value any consumer yields. A consumer that is
// merely empty is skipped; any other failure stops the scan and is
// returned. When every consumer is empty, TryRecv returns ErrEmpty.
//
// A Collector is not safe for concurrent use.
type Collector[T any] struct {
	consumers []Consumer[T]
}

// NewCollector returns a Collector over consumers.
func NewCollector[T any](consumers ...Consumer[T]) *Collector[T] {
	return &Collector[T]{consumers: consumers}
}

// Push appends c to the consumers scanned by TryRecv.
func (c *Collector[T]) Push(consumer Consumer[T]) {
	c.consumers = append(c.consumers, consumer)
}

// Len returns the number of registered consumers.
func (c *Collector[T]) Len() int {
	return len(c.consumers)
}

// TryRecv implements Consumer.
func (c *Collector[T]) TryRecv() (T, error) {
	var zero T
	for _, consumer := range c.consumers {
		v, err := consumer.TryRecv()
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrEmpty) {
			return zero, err
		}
	}
	return zero, ErrEmpty
}
