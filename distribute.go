// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "errors"

// Distributor routes each value to the producer registered for its key.
//
// A Distributor is not safe for concurrent Insert; concurrent Send is safe
// as long as the registered producers allow it.
type Distributor[K comparable, T any] struct {
	key       func(T) K
	producers map[K]Producer[T]
}

// NewDistributor returns an empty Distributor that derives the routing
// key of a value with key.
func NewDistributor[K comparable, T any](key func(T) K) *Distributor[K, T] {
	return &Distributor[K, T]{key: key, producers: make(map[K]Producer[T])}
}

// Insert maps k to p and returns the producer previously mapped to k,
// if any.
func (d *Distributor[K, T]) Insert(k K, p Producer[T]) (Producer[T], bool) {
	prev, ok := d.producers[k]
	d.producers[k] = p
	return prev, ok
}

// Remove unmaps k and returns the producer that was mapped to it.
func (d *Distributor[K, T]) Remove(k K) (Producer[T], bool) {
	p, ok := d.producers[k]
	delete(d.producers, k)
	return p, ok
}

// Send implements Producer. A value whose key has no producer fails with
// ErrMissingKey. A failure of the selected producer is returned with the
// value handed back.
func (d *Distributor[K, T]) Send(v T) error {
	p, ok := d.producers[d.key(v)]
	if !ok {
		return &SendError[T]{Value: v, Err: ErrMissingKey}
	}
	err := p.Send(v)
	if err == nil {
		return nil
	}
	var se *SendError[T]
	if errors.As(err, &se) {
		return se
	}
	return &SendError[T]{Value: v, Err: err}
}
