// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "github.com/bureau-foundation/strongbox/lib/primitive"

// Zero overwrites data with zeros using writes the compiler does not
// remove. For secrets that pass through plain slices outside a
// Buffer: file reads, flag values, keys in transit. Safe on empty and
// nil slices. Wiping a slice clears the backing bytes it windows.
func Zero(data []byte) {
	primitive.Wipe(data)
}
