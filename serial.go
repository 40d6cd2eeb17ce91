// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package handoff

import "code.hybscloud.com/atomix"

// Serial tags the handles that share one slot, queue or port link.
// A Sender and its Receiver report the same Serial, as do the two ports
// made by one Link; the value only grows, so it also orders creation.
type Serial = uint32

var serials atomix.Uint32

// nextSerial is called once per constructor; the first serial is 1.
func nextSerial() Serial {
	return serials.Add(1)
}
