// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build handoff_minimal || (handoff_nochannel && handoff_nothread)

package handoff_test

const wantBackend = "spin"
