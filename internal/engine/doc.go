// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package engine is the single boundary to the cryptographic
// backends: SHA-256 and HMAC-SHA256 from the Go runtime, BLAKE3 from
// github.com/zeebo/blake3, and PBKDF2 from golang.org/x/crypto. No
// other package in this repository invokes a primitive implementation
// directly.
//
// Every computational call returns an explicit error status. The
// boundary checks each backend's observable contract (digest length,
// write acceptance) and reports violations both as the returned error
// and through the process-wide diagnostic slot read by [LastError].
// Callers must treat a non-nil error as a failed computation; partial
// results are never returned.
//
// The boundary performs no input validation beyond what the backends
// require. Callers (lib/primitive) validate parameters before
// crossing it.
package engine
