// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFromPath reads a secret from a file path, or from stdin if path is "-".
// The returned buffer is mmap-backed (locked into RAM, excluded from core
// dumps) and must be closed by the caller. Leading/trailing whitespace is
// trimmed before storing. Returns an error if the source is empty after
// trimming.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	// NewFromBytes copies into mmap-backed memory and wipes trimmed.
	buffer, err := NewFromBytes(trimmed)
	// Wipe remaining bytes (whitespace prefix/suffix) not covered by trimmed.
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// readChunkBytes is the initial transient capacity for NewFromReader;
// the transient doubles from there, never past the caller's limit.
const readChunkBytes = 4096

// NewFromReader reads the whole of reader into a protected buffer,
// refusing sources larger than limit bytes. Every transient heap copy
// used for the read is wiped before returning. Empty sources and
// non-positive limits are errors; any positive limit is valid,
// including the largest int.
func NewFromReader(reader io.Reader, limit int) (*Buffer, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("secret: read limit must be positive, got %d", limit)
	}

	// The transient grows toward limit as bytes arrive; each abandoned
	// copy is wiped at growth time, and capacity never exceeds limit.
	transient := make([]byte, 0, min(limit, readChunkBytes))
	exhausted := false
	for !exhausted && len(transient) < limit {
		if len(transient) == cap(transient) {
			grown := make([]byte, len(transient), nextCapacity(cap(transient), limit))
			copy(grown, transient)
			Zero(transient[:cap(transient)])
			transient = grown
		}
		n, err := io.ReadFull(reader, transient[len(transient):cap(transient)])
		transient = transient[:len(transient)+n]
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			exhausted = true
		case err != nil:
			Zero(transient[:cap(transient)])
			return nil, fmt.Errorf("secret: reading source: %w", err)
		}
	}

	if !exhausted {
		// Exactly limit bytes are in hand. One more byte decides
		// whether the source is exactly limit bytes or over it.
		var spare [1]byte
		n, err := io.ReadFull(reader, spare[:])
		Zero(spare[:])
		switch {
		case n > 0:
			Zero(transient[:cap(transient)])
			return nil, fmt.Errorf("secret: source exceeds %d-byte limit", limit)
		case err != nil && !errors.Is(err, io.EOF):
			Zero(transient[:cap(transient)])
			return nil, fmt.Errorf("secret: reading source: %w", err)
		}
	}

	if len(transient) == 0 {
		Zero(transient[:cap(transient)])
		return nil, fmt.Errorf("secret: source is empty")
	}

	buffer, err := NewFromBytes(transient)
	// Read may scribble on the whole slice it is handed; wipe the
	// capacity tail NewFromBytes did not cover.
	Zero(transient[len(transient):cap(transient)])
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// nextCapacity doubles current without exceeding limit or overflowing.
func nextCapacity(current, limit int) int {
	if current > limit/2 {
		return limit
	}
	return current * 2
}
