// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package primitive

import "errors"

// EngineError reports a failure from the cryptographic engine for a
// single facade operation. The engine's own error is wrapped and
// reachable through errors.Unwrap; the same failure is also visible
// through [LastEngineError] until a later failure replaces it.
type EngineError struct {
	// Op is the facade operation that failed: "hash", "double-hash",
	// "fast-hash", "keyed-hash", or "derive-key".
	Op string

	// Err is the failure the engine reported.
	Err error
}

func (err *EngineError) Error() string {
	return "engine: " + err.Op + ": " + err.Err.Error()
}

func (err *EngineError) Unwrap() error {
	return err.Err
}

// MisuseError reports a caller-side contract violation, such as a
// non-positive key-derivation output length. The engine is never
// invoked for a misused call and [LastEngineError] is not updated.
type MisuseError struct {
	// Op is the facade operation that rejected the call.
	Op string

	// Message describes the violated contract.
	Message string
}

func (err *MisuseError) Error() string {
	return err.Op + ": " + err.Message
}

// IsEngineFailure reports whether err is a failure reported by the
// cryptographic engine (testable through wrapped chains with
// errors.As).
func IsEngineFailure(err error) bool {
	var engineError *EngineError
	return errors.As(err, &engineError)
}

// IsMisuse reports whether err is a caller-side contract violation
// rejected before the engine was invoked.
func IsMisuse(err error) bool {
	var misuseError *MisuseError
	return errors.As(err, &misuseError)
}
