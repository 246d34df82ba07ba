// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/strongbox/lib/primitive"
)

// digestFor computes the digest of data under the named algorithm.
func digestFor(algorithm string, data []byte) (primitive.Digest, error) {
	switch algorithm {
	case "sha256":
		return primitive.Hash(data)
	case "sha256d":
		return primitive.DoubleHash(data)
	case "blake3":
		return primitive.FastHash(data)
	default:
		return primitive.Digest{}, fmt.Errorf("unknown algorithm %q, want one of: %v", algorithm, algorithmNames)
	}
}

// runHash digests a file or stdin and prints the lowercase hex digest.
func runHash(args []string) error {
	flags := pflag.NewFlagSet("hash", pflag.ContinueOnError)
	algorithm := flags.StringP("algorithm", "a", "", "digest algorithm: sha256, sha256d, or blake3 (default from config)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 1 {
		return fmt.Errorf("hash: at most one input file, got %d", flags.NArg())
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}
	if *algorithm == "" {
		*algorithm = config.Algorithm
	}

	data, err := readInput(flags.Arg(0))
	if err != nil {
		return err
	}
	slog.Debug("hashing input", "algorithm", *algorithm, "bytes", len(data))

	digest, err := digestFor(*algorithm, data)
	if err != nil {
		return fmt.Errorf("hash: %w", err)
	}

	fmt.Println(primitive.FormatDigest(digest))
	return nil
}
