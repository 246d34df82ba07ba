// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"crypto/subtle"
	"runtime"
)

// Wipe overwrites buffer with zeros using writes the compiler does
// not remove. A plain zeroing loop over memory that is never read
// again is a dead store the optimizer may elide; ConstantTimeCopy is
// opaque to the inliner, and the KeepAlive pins the buffer past the
// final store. Zero-length and nil buffers are no-ops. Never fails.
func Wipe(buffer []byte) {
	if len(buffer) == 0 {
		return
	}
	zeros := make([]byte, len(buffer))
	subtle.ConstantTimeCopy(1, buffer, zeros)
	runtime.KeepAlive(&buffer)
}
