// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import (
	"errors"

	"code.hybscloud.com/iox"
)

// wouldBlockError is a retry-later signal. It matches iox.ErrWouldBlock
// under errors.Is so callers can treat it like any other non-blocking
// boundary in the hybscloud stack.
type wouldBlockError struct {
	msg string
}

func (e *wouldBlockError) Error() string { return e.msg }

func (e *wouldBlockError) Is(target error) bool {
	return target == iox.ErrWouldBlock
}

var (
	// ErrFull reports that the slot or queue cannot accept a value right now.
	// A second Send on a one-shot pair also reports ErrFull.
	ErrFull error = &wouldBlockError{msg: "handoff: full"}

	// ErrEmpty reports that no value is ready yet.
	ErrEmpty error = &wouldBlockError{msg: "handoff: empty"}

	// ErrDisconnected reports that the peer is gone and no value remains.
	ErrDisconnected = errors.New("handoff: disconnected")

	// ErrTimeout reports that RecvTimeout expired before a value arrived.
	ErrTimeout = errors.New("handoff: timeout")

	// ErrMissingKey reports that a Distributor has no producer for a key.
	ErrMissingKey = errors.New("handoff: missing key")

	// ErrUnspecifiable reports that a Specifier could not convert a value
	// to the type its producer accepts.
	ErrUnspecifiable = errors.New("handoff: unspecifiable value")
)

// IsWouldBlock reports whether err is a retry-later signal
// (ErrFull, ErrEmpty or iox.ErrWouldBlock).
func IsWouldBlock(err error) bool {
	return errors.Is(err, iox.ErrWouldBlock)
}

// SendError is returned by a failed Send. It hands the rejected value back
// to the caller; no error path drops a value the caller still owns.
type SendError[T any] struct {
	Value T
	Err   error
}

func (e *SendError[T]) Error() string {
	return "handoff: send failed: " + e.Err.Error()
}

// Unwrap returns the cause, such as ErrFull, ErrDisconnected or ErrMissingKey.
func (e *SendError[T]) Unwrap() error {
	return e.Err
}

// Disposer is implemented by values that hold resources. When a pending
// value is discarded because its receiver closed, Dispose is called
// exactly once.
type Disposer interface {
	Dispose()
}

// dispose releases v if it implements Disposer.
func dispose[T any](v T) {
	if d, ok := any(v).(Disposer); ok {
		d.Dispose()
	}
}
