// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package primitive

import (
	"fmt"
	"math"

	"github.com/bureau-foundation/strongbox/internal/engine"
)

// Hash computes the SHA-256 digest of data. Total for arbitrary
// input; the empty input yields the defined SHA-256 empty-string
// digest.
func Hash(data []byte) (Digest, error) {
	digest, err := engine.Hash(data)
	if err != nil {
		return Digest{}, &EngineError{Op: "hash", Err: err}
	}
	return Digest(digest), nil
}

// DoubleHash computes SHA-256 applied twice, the construction used by
// Bitcoin-style block and transaction identifiers. For all inputs,
// DoubleHash(x) equals Hash of the raw bytes of Hash(x).
func DoubleHash(data []byte) (Digest, error) {
	digest, err := engine.DoubleHash(data)
	if err != nil {
		return Digest{}, &EngineError{Op: "double-hash", Err: err}
	}
	return Digest(digest), nil
}

// FastHash computes the 256-bit BLAKE3 digest of data. Same totality
// contract as [Hash] with a faster backend; the two produce unrelated
// digest values.
func FastHash(data []byte) (Digest, error) {
	digest, err := engine.FastHash(data)
	if err != nil {
		return Digest{}, &EngineError{Op: "fast-hash", Err: err}
	}
	return Digest(digest), nil
}

// KeyedHash computes the HMAC-SHA256 authentication tag of message
// under key. Every key length is accepted, including empty; HMAC
// defines the normalization. The key is read, never retained.
func KeyedHash(key, message []byte) (Digest, error) {
	digest, err := engine.KeyedHash(key, message)
	if err != nil {
		return Digest{}, &EngineError{Op: "keyed-hash", Err: err}
	}
	return Digest(digest), nil
}

// DeriveKey derives outputLength bytes from password and salt with
// PBKDF2-HMAC-SHA256 at the given iteration count. The result has
// exactly outputLength bytes. Iterations outside [1, 2^32-1] and
// output lengths below 1 are misuse: the call fails with a
// [MisuseError] and the engine is not invoked. Low counts are valid
// for reference vectors only; use 100000 iterations or more for
// password-derived keys (the strongbox CLI defaults to 600000).
//
// The returned key is secret material owned by the caller; wipe it
// with [Wipe] or hold it in a lib/secret Buffer.
func DeriveKey(password, salt []byte, iterations, outputLength int) ([]byte, error) {
	if iterations < 1 {
		return nil, &MisuseError{
			Op:      "derive-key",
			Message: fmt.Sprintf("iteration count %d, want at least 1", iterations),
		}
	}
	if uint64(iterations) > math.MaxUint32 {
		return nil, &MisuseError{
			Op:      "derive-key",
			Message: fmt.Sprintf("iteration count %d exceeds the engine maximum %d", iterations, uint64(math.MaxUint32)),
		}
	}
	if outputLength < 1 {
		return nil, &MisuseError{
			Op:      "derive-key",
			Message: fmt.Sprintf("output length %d, want at least 1", outputLength),
		}
	}

	key, err := engine.DeriveKey(password, salt, uint32(iterations), outputLength)
	if err != nil {
		return nil, &EngineError{Op: "derive-key", Err: err}
	}
	return key, nil
}

// Wipe overwrites buffer with zeros using writes the compiler does
// not remove, for secrets held in plain slices. Safe on empty and
// nil. Never fails. Wiping a slice clears the backing bytes it
// windows; other slices over the same backing array observe the
// zeros.
func Wipe(buffer []byte) {
	engine.Wipe(buffer)
}

// EngineVersion identifies the engine backends. It never fails and
// never returns an empty string: components missing from the binary's
// build metadata report as "unknown".
func EngineVersion() string {
	return engine.Version()
}

// LastEngineError returns the message of the most recent failure the
// engine recorded and true, or ("", false) when none has occurred
// since process start. The slot is process-wide and best-effort:
// under concurrency a reader may observe a failure from a different
// goroutine's call. Use the error returned by each operation for
// control flow; this accessor exists for diagnostics.
func LastEngineError() (string, bool) {
	return engine.LastError()
}
