// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package primitive is the safe facade over the cryptographic engine.
// It exposes SHA-256, double SHA-256, BLAKE3, HMAC-SHA256, and
// PBKDF2-HMAC-SHA256 as total, panic-free functions with explicit
// error results.
//
// Every operation accepts arbitrary byte sequences, including empty
// and nil, and invokes the engine exactly once per call. No operation
// panics and no engine status is discarded: a failed computation is
// always visible as a returned error. The taxonomy is two error
// types, [EngineError] for failures the engine reported and
// [MisuseError] for calls rejected before the engine was invoked,
// with [IsEngineFailure] and [IsMisuse] as predicates.
//
// Secret inputs passed to these functions are read, never retained.
// Callers who need zeroization of their own buffers use [Wipe]
// directly or hold the bytes in a lib/secret Buffer, which wipes
// itself.
package primitive
