// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "errors"

// Specifier is a Producer of G that forwards to a Producer of T.
//
// It lets producers of different value types sit behind one Distributor:
// each is wrapped in a Specifier over the Distributor's common type.
// A value that specify rejects fails with ErrUnspecifiable. A value the
// inner producer rejects is handed back converted with generalize.
type Specifier[G, T any] struct {
	producer   Producer[T]
	specify    func(G) (T, bool)
	generalize func(T) G
}

// NewSpecifier returns a Specifier sending to producer.
func NewSpecifier[G, T any](producer Producer[T], specify func(G) (T, bool), generalize func(T) G) *Specifier[G, T] {
	return &Specifier[G, T]{producer: producer, specify: specify, generalize: generalize}
}

// Send implements Producer.
func (s *Specifier[G, T]) Send(v G) error {
	t, ok := s.specify(v)
	if !ok {
		return &SendError[G]{Value: v, Err: ErrUnspecifiable}
	}
	err := s.producer.Send(t)
	if err == nil {
		return nil
	}
	var se *SendError[T]
	if errors.As(err, &se) {
		return &SendError[G]{Value: s.generalize(se.Value), Err: se.Err}
	}
	return &SendError[G]{Value: v, Err: err}
}

// Adapter is a Consumer of G reading from a Consumer of T.
// Failures of the inner consumer pass through unchanged.
type Adapter[T, G any] struct {
	consumer Consumer[T]
	adapt    func(T) G
}

// NewAdapter returns an Adapter converting each value with adapt.
func NewAdapter[T, G any](consumer Consumer[T], adapt func(T) G) *Adapter[T, G] {
	return &Adapter[T, G]{consumer: consumer, adapt: adapt}
}

// TryRecv implements Consumer.
func (a *Adapter[T, G]) TryRecv() (G, error) {
	v, err := a.consumer.TryRecv()
	if err != nil {
		var zero G
		return zero, err
	}
	return a.adapt(v), nil
}
