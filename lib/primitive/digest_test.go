// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package primitive

import (
	"strings"
	"testing"
)

func TestFormatDigest_RoundTrip(t *testing.T) {
	digest, err := Hash([]byte("hello world"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	formatted := FormatDigest(digest)
	if len(formatted) != 64 {
		t.Fatalf("FormatDigest() produced %d characters, want 64", len(formatted))
	}
	if formatted != strings.ToLower(formatted) {
		t.Errorf("FormatDigest() = %q, want lowercase", formatted)
	}

	parsed, err := ParseDigest(formatted)
	if err != nil {
		t.Fatalf("ParseDigest(%q) error: %v", formatted, err)
	}
	if parsed != digest {
		t.Errorf("ParseDigest(FormatDigest()) = %s, want %s", FormatDigest(parsed), formatted)
	}
}

func TestParseDigest_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "b94d27b9"},
		{
			name: "33 bytes",
			input: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9" + "ff",
		},
		{
			name:  "not hex",
			input: strings.Repeat("zz", 32),
		},
		{
			name:  "odd length",
			input: strings.Repeat("ab", 31) + "c",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseDigest(test.input); err == nil {
				t.Errorf("ParseDigest(%q) succeeded, want error", test.input)
			}
		})
	}
}
