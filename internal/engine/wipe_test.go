// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import "testing"

func TestWipe_ZerosBuffer(t *testing.T) {
	buffer := []byte{1, 2, 3, 4, 5}

	Wipe(buffer)

	for index, value := range buffer {
		if value != 0 {
			t.Errorf("buffer[%d] = %d after Wipe, want 0", index, value)
		}
	}
}

func TestWipe_ZerosLargeBuffer(t *testing.T) {
	buffer := make([]byte, 4096)
	for index := range buffer {
		buffer[index] = byte(index)
	}

	Wipe(buffer)

	for index, value := range buffer {
		if value != 0 {
			t.Fatalf("buffer[%d] = %d after Wipe, want 0", index, value)
		}
	}
}

func TestWipe_EmptyAndNil(t *testing.T) {
	// Must not panic.
	Wipe(nil)
	Wipe([]byte{})
}

func TestWipe_PartialSlice(t *testing.T) {
	backing := []byte{1, 2, 3, 4, 5, 6}

	Wipe(backing[2:4])

	expected := []byte{1, 2, 0, 0, 5, 6}
	for index := range backing {
		if backing[index] != expected[index] {
			t.Errorf("backing[%d] = %d, want %d", index, backing[index], expected[index])
		}
	}
}
