// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides a memory-safe buffer for sensitive data such
// as passwords, passphrases, and derived keys.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). Because the
// memory lives outside the Go heap, the garbage collector cannot copy
// or relocate it, so exactly one live copy of the secret exists.
//
// A Buffer moves through two states, active then wiped, in one
// direction only. [Buffer.Close] performs the transition exactly once:
// the region is overwritten with zero writes the compiler cannot
// remove, then unlocked and unmapped. After the transition every
// accessor returns zeros of the original length; access to a wiped
// buffer never panics. A finalizer backstop wipes buffers whose owner
// never called Close, but deterministic disposal is the owner's job,
// normally a deferred Close.
//
// Constructors:
//
//   - [New] -- allocates a zero-filled buffer of a given size
//   - [NewFromBytes] -- copies into protected memory, wipes the source
//   - [NewFromReader] -- reads from an io.Reader under a size limit
//   - [ReadFromPath] -- reads from a file or stdin, trimming whitespace
//
// Access via [Buffer.Bytes] (slice into the protected region) or
// [Buffer.String] (heap copy for API boundaries). [Buffer.Equal] uses
// constant-time comparison. [Buffer.WriteTo] implements io.WriterTo
// for transfer without heap intermediaries. [Zero] wipes plain byte
// slices held outside a Buffer.
//
// Wiping delegates to lib/primitive, whose engine performs the
// non-elidable zeroization.
package secret
