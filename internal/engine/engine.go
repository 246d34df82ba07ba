// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"sync/atomic"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"
)

// DigestSize is the output size in bytes of every fixed-size digest
// the engine produces: SHA-256, double SHA-256, BLAKE3-256, and
// HMAC-SHA256 all emit exactly this many bytes.
const DigestSize = 32

// lastFailure holds the message of the most recent engine failure,
// or the empty string when none has been recorded. Process-wide and
// best-effort: concurrent failures race for the slot and readers may
// observe a message from a different goroutine's call. It exists for
// diagnostics, not for control flow; control flow uses the errors
// returned by each operation.
var lastFailure atomic.Value // string

// recordFailure stamps the diagnostic slot and returns the error the
// operation propagates to its caller. Every failure path in this
// package goes through here so the slot and the returned error never
// disagree about the most recent local failure.
func recordFailure(operation string, err error) error {
	wrapped := fmt.Errorf("%s: %w", operation, err)
	lastFailure.Store(wrapped.Error())
	return wrapped
}

// LastError returns the message of the most recent engine failure and
// true, or ("", false) when no failure has been recorded since process
// start. Best-effort under concurrency; see lastFailure.
func LastError() (string, bool) {
	message, ok := lastFailure.Load().(string)
	if !ok || message == "" {
		return "", false
	}
	return message, true
}

// Hash computes the SHA-256 digest of input. The backend is the Go
// runtime implementation, which has no failure modes for in-memory
// input; the error return carries the boundary's status contract and
// is nil today.
func Hash(input []byte) ([DigestSize]byte, error) {
	return sha256.Sum256(input), nil
}

// DoubleHash computes SHA-256 applied twice: SHA-256(SHA-256(input)).
// The intermediate digest is hashed as its raw 32 bytes.
func DoubleHash(input []byte) ([DigestSize]byte, error) {
	first := sha256.Sum256(input)
	return sha256.Sum256(first[:]), nil
}

// FastHash computes the 256-bit BLAKE3 digest of input.
func FastHash(input []byte) ([DigestSize]byte, error) {
	var digest [DigestSize]byte

	hasher := blake3.New()
	if _, err := hasher.Write(input); err != nil {
		return digest, recordFailure("blake3", err)
	}
	sum := hasher.Sum(nil)
	if len(sum) != DigestSize {
		return digest, recordFailure("blake3",
			fmt.Errorf("backend produced %d-byte digest, want %d", len(sum), DigestSize))
	}
	copy(digest[:], sum)
	return digest, nil
}

// KeyedHash computes the HMAC-SHA256 authentication tag of message
// under key. Any key length is accepted, including empty: HMAC
// normalizes keys longer than the block size by hashing and pads
// shorter ones, so key length never causes a failure.
func KeyedHash(key, message []byte) ([DigestSize]byte, error) {
	var digest [DigestSize]byte

	mac := hmac.New(sha256.New, key)
	if _, err := mac.Write(message); err != nil {
		return digest, recordFailure("hmac-sha256", err)
	}
	sum := mac.Sum(nil)
	if len(sum) != DigestSize {
		return digest, recordFailure("hmac-sha256",
			fmt.Errorf("backend produced %d-byte tag, want %d", len(sum), DigestSize))
	}
	copy(digest[:], sum)
	return digest, nil
}

// DeriveKey derives outputLength bytes from password and salt with
// PBKDF2-HMAC-SHA256 at the given iteration count. The iteration
// domain is uint32; callers validate range before conversion. The
// result has exactly outputLength bytes or the call fails.
func DeriveKey(password, salt []byte, iterations uint32, outputLength int) ([]byte, error) {
	key := pbkdf2.Key(password, salt, int(iterations), outputLength, sha256.New)
	if len(key) != outputLength {
		return nil, recordFailure("pbkdf2-sha256",
			fmt.Errorf("backend produced %d bytes, want %d", len(key), outputLength))
	}
	return key, nil
}
