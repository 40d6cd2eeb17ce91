// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "code.hybscloud.com/atomix"

// Cell state word layout: phase in the low three bits, closure flags above.
//
//	empty   → writing   [Publish claims the value field]
//	writing → filled    [Publish done]
//	writing → empty     [Publish saw rxClosed, value handed back]
//	filled  → reading   [Take claims the value field]
//	reading → empty     [Take done, reusable cell]
//	reading → spent     [Take done, one-shot cell]
//	filled  → empty     [CloseRx discards the value]
//
// Flags only ever get set. Every transition is a CAS on the whole word.
const (
	phaseEmpty uint32 = iota
	phaseWriting
	phaseFilled
	phaseReading
	phaseSpent

	phaseMask uint32 = 0x7
	txClosed  uint32 = 1 << 3
	rxClosed  uint32 = 1 << 4
)

// with replaces the phase of s, keeping the closure flags.
func with(s, phase uint32) uint32 {
	return s&^phaseMask | phase
}

// Cell is a single-value slot with an atomic state machine.
//
// Cell never allocates and never blocks: Publish and Take are CAS loops
// that retry only under contention. The zero value is a reusable empty
// cell; call Init(true) before sharing to make it one-shot. A Cell must
// not be copied after first use.
//
// Cell supports one publisher and one taker at a time.
type Cell[T any] struct {
	state   atomix.Uint32
	oneShot bool
	value   T
}

// Init configures the cell. It must be called before the cell is shared.
// A one-shot cell accepts exactly one value; after it is taken the cell
// reports ErrDisconnected to the taker and ErrFull to the publisher.
func (c *Cell[T]) Init(oneShot bool) {
	c.oneShot = oneShot
}

// Publish stores v.
// Returns ErrDisconnected if either side has closed, ErrFull if a value is
// already pending (or a one-shot value was already delivered). On failure
// the cell keeps no reference to v.
func (c *Cell[T]) Publish(v T) error {
	for {
		s := c.state.LoadAcquire()
		if s&(rxClosed|txClosed) != 0 {
			return ErrDisconnected
		}
		if s&phaseMask != phaseEmpty {
			return ErrFull
		}
		if c.state.CompareAndSwapAcqRel(s, with(s, phaseWriting)) {
			break
		}
	}

	c.value = v
	for {
		s := c.state.LoadAcquire()
		if s&rxClosed != 0 {
			var zero T
			c.value = zero
			if c.state.CompareAndSwapAcqRel(s, with(s, phaseEmpty)) {
				return ErrDisconnected
			}
			continue
		}
		if c.state.CompareAndSwapAcqRel(s, with(s, phaseFilled)) {
			return nil
		}
	}
}

// Take removes the pending value.
// Returns ErrEmpty if nothing is ready yet, ErrDisconnected if the
// publisher is gone and no value remains, the taker side has closed, or a
// one-shot value was already taken.
func (c *Cell[T]) Take() (T, error) {
	var zero T
	for {
		s := c.state.LoadAcquire()
		if s&rxClosed != 0 {
			return zero, ErrDisconnected
		}
		switch s & phaseMask {
		case phaseFilled:
			if !c.state.CompareAndSwapAcqRel(s, with(s, phaseReading)) {
				continue
			}
			v := c.value
			c.value = zero
			next := phaseEmpty
			if c.oneShot {
				next = phaseSpent
			}
			for {
				s = c.state.LoadAcquire()
				if c.state.CompareAndSwapAcqRel(s, with(s, next)) {
					return v, nil
				}
			}
		case phaseSpent:
			return zero, ErrDisconnected
		case phaseEmpty:
			if s&txClosed != 0 {
				return zero, ErrDisconnected
			}
			return zero, ErrEmpty
		default:
			return zero, ErrEmpty
		}
	}
}

// Ready reports whether Take would return something other than ErrEmpty.
// It does not change the state.
func (c *Cell[T]) Ready() bool {
	s := c.state.LoadAcquire()
	if s&rxClosed != 0 {
		return true
	}
	switch s & phaseMask {
	case phaseFilled, phaseSpent:
		return true
	case phaseEmpty:
		return s&txClosed != 0
	}
	return false
}

// Disconnected reports whether no further value can ever be taken.
func (c *Cell[T]) Disconnected() bool {
	s := c.state.LoadAcquire()
	if s&rxClosed != 0 {
		return true
	}
	switch s & phaseMask {
	case phaseSpent:
		return true
	case phaseEmpty:
		return s&txClosed != 0
	}
	return false
}

// CloseTx records that the publisher is gone. A pending value stays
// retrievable. Idempotent.
func (c *Cell[T]) CloseTx() {
	for {
		s := c.state.LoadAcquire()
		if s&txClosed != 0 {
			return
		}
		if c.state.CompareAndSwapAcqRel(s, s|txClosed) {
			return
		}
	}
}

// CloseRx records that the taker is gone and discards a pending value,
// calling Dispose on it if it implements Disposer. Idempotent.
func (c *Cell[T]) CloseRx() {
	for {
		s := c.state.LoadAcquire()
		if s&rxClosed != 0 {
			return
		}
		if s&phaseMask == phaseFilled {
			if !c.state.CompareAndSwapAcqRel(s, with(s, phaseEmpty)|rxClosed) {
				continue
			}
			v := c.value
			var zero T
			c.value = zero
			dispose(v)
			return
		}
		if c.state.CompareAndSwapAcqRel(s, s|rxClosed) {
			return
		}
	}
}
