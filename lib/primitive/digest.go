// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package primitive

import (
	"encoding/hex"
	"fmt"

	"github.com/bureau-foundation/strongbox/internal/engine"
)

// DigestSize is the size in bytes of every fixed-size digest the
// facade produces.
const DigestSize = engine.DigestSize

// Digest is a 32-byte hash output. Digests are plain values: two
// digests are equal exactly when all of their bytes are equal, so ==
// is the correct comparison. Digests are not secret material and need
// no wiping.
type Digest [DigestSize]byte

// FormatDigest returns the lowercase hex encoding of a digest. This
// is the canonical form for CLI output, logs, and verification input.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a hex-encoded digest string. Returns an error if
// the string is not a valid 64-character hex encoding of 32 bytes.
func ParseDigest(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != DigestSize {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), DigestSize)
	}
	copy(digest[:], decoded)
	return digest, nil
}
