// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Strongbox is the operator CLI for the primitive facade and the
// secret buffer. It digests files and streams (SHA-256, double
// SHA-256, BLAKE3), computes and verifies HMAC-SHA256 tags with the
// key held in locked memory, derives keys with PBKDF2-HMAC-SHA256
// from an interactively prompted or file-provided passphrase, and
// runs the engine's known-answer self-checks.
// Subcommands: hash, mac, derive, selfcheck, version.
package main
