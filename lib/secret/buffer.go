// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"crypto/subtle"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/strongbox/lib/primitive"
)

// Buffer holds sensitive data in memory that is locked against
// swapping, excluded from core dumps, and wiped on close. The backing
// memory is allocated via mmap outside the Go heap.
//
// A Buffer has exactly two states. While active, accessors expose the
// live protected region. Close transitions the buffer to wiped: the
// region is overwritten with non-elidable zero writes, unlocked, and
// unmapped. The transition runs exactly once; Close is idempotent and
// nothing transitions a wiped buffer back. After the transition,
// accessors return zeros of the original length and never panic.
//
// Slices obtained from Bytes before Close alias the protected region
// directly and must not be used after Close; the mapping is gone.
//
// A Buffer must not be copied after creation. Contents are assumed to
// be exclusively owned; the internal mutex makes the state transition
// safe against a racing Close or finalizer, not concurrent content
// mutation.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	length int
	closed bool
}

// New allocates a new secret buffer of the given size. The buffer is
// backed by an anonymous mmap region that is:
//   - Locked into physical RAM (mlock), preventing swap
//   - Excluded from core dumps (MADV_DONTDUMP)
//   - Outside the Go heap, invisible to the garbage collector
//
// The caller owns the buffer and should release it deterministically
// with Close, normally via defer. A finalizer backstop wipes and
// releases the region if the owner never does, but finalizer timing
// is up to the collector; only Close bounds the secret's lifetime.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("secret: buffer size must be positive, got %d", size)
	}

	// Allocate anonymous memory outside the Go heap.
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	// Lock the memory to prevent it from being swapped to disk.
	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}

	// Exclude from core dumps.
	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	buffer := &Buffer{
		data:   data,
		length: size,
	}
	runtime.SetFinalizer(buffer, (*Buffer).finalize)
	return buffer, nil
}

// NewFromBytes creates a secret buffer from existing data. The source
// bytes are copied into the protected region and then wiped in place,
// so the caller's original slice no longer holds the secret and
// exactly one live copy exists.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: cannot create buffer from empty source")
	}

	buffer, err := New(len(source))
	if err != nil {
		return nil, err
	}

	copy(buffer.data, source)
	primitive.Wipe(source)

	return buffer, nil
}

// viewLocked returns the live contents while the buffer is active, or
// a fresh zero-filled slice of the original length after Close. The
// caller must hold b.mu.
func (b *Buffer) viewLocked() []byte {
	if b.closed {
		return make([]byte, b.length)
	}
	return b.data[:b.length]
}

// Bytes returns the secret data. While the buffer is active the
// returned slice points directly into the protected region: reads and
// writes go to the single live copy, and the slice must not be held
// past Close. After Close, Bytes returns a fresh zero-filled slice of
// the original length.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.viewLocked()
}

// String returns the secret data as a string. The returned string is
// backed by a heap-allocated copy (Go strings are immutable and must
// live on the heap), so this should only be used at API boundaries
// that require string arguments. Prefer Bytes when possible. After
// Close, the string is NUL bytes of the original length.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return string(b.viewLocked())
}

// Len returns the size of the secret data. Stable across Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.length
}

// Equal reports whether two buffers hold the same bytes, compared in
// constant time. A wiped buffer compares as zeros of its original
// length, so two wiped buffers of equal length are equal and a wiped
// buffer never equals an active one holding non-zero bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if other != b {
		other.mu.Lock()
		defer other.mu.Unlock()
	}

	return subtle.ConstantTimeCompare(b.viewLocked(), other.viewLocked()) == 1
}

// WriteTo writes the secret data to writer without a heap
// intermediary, implementing io.WriterTo. A wiped buffer writes zeros
// of its original length.
func (b *Buffer) WriteTo(writer io.Writer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	written, err := writer.Write(b.viewLocked())
	if err != nil {
		return int64(written), fmt.Errorf("secret: writing contents: %w", err)
	}
	return int64(written), nil
}

// Close wipes the buffer contents with non-elidable zero writes, then
// unlocks and unmaps the memory. The active to wiped transition runs
// exactly once; later calls are no-ops returning nil. After Close,
// accessors return zeros and never panic.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closeLocked()
}

// finalize is the collector-driven backstop for buffers whose owner
// never called Close. Registered in New, cleared on explicit Close.
func (b *Buffer) finalize() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closeLocked()
}

func (b *Buffer) closeLocked() error {
	if b.closed {
		return nil
	}
	b.closed = true
	runtime.SetFinalizer(b, nil)

	primitive.Wipe(b.data)

	// Unmapping failures are reported but the wipe has already
	// happened; the mapping is released by the kernel at process exit
	// regardless.
	var firstError error
	if err := unix.Munlock(b.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(b.data); err != nil && firstError == nil {
		firstError = fmt.Errorf("secret: munmap failed: %w", err)
	}

	b.data = nil
	return firstError
}
