// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

// Producer accepts values without blocking.
// A failed Send returns the value inside a *SendError.
type Producer[T any] interface {
	Send(v T) error
}

// Consumer yields values without blocking.
// An empty consumer returns an error matching ErrEmpty; any other error is
// a defect that ends consumption (ErrDisconnected, a compose failure, ...).
type Consumer[T any] interface {
	TryRecv() (T, error)
}

var (
	_ Producer[int] = (*Sender[int])(nil)
	_ Producer[int] = (*QueueSender[int])(nil)
	_ Consumer[int] = (*Receiver[int])(nil)
	_ Consumer[int] = (*QueueReceiver[int])(nil)

	_ Producer[int] = (*Specifier[int, string])(nil)
	_ Consumer[int] = (*Adapter[string, int])(nil)
)
