// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "testing"

func TestZero(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}

	Zero(data)

	for index, value := range data {
		if value != 0 {
			t.Errorf("data[%d] = %d after Zero, want 0", index, value)
		}
	}
}

func TestZero_EmptyAndNil(t *testing.T) {
	// Must not panic.
	Zero(nil)
	Zero([]byte{})
}

func TestZero_SharedBacking(t *testing.T) {
	backing := []byte{9, 9, 9, 9}
	window := backing[1:3]

	Zero(window)

	expected := []byte{9, 0, 0, 9}
	for index := range backing {
		if backing[index] != expected[index] {
			t.Errorf("backing[%d] = %d, want %d", index, backing[index], expected[index])
		}
	}
}
