// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/strongbox/lib/primitive"
)

// Known-answer expectations. Any drift here means the engine backends
// are not computing what they claim and the binary must not be
// trusted with keys.
const (
	checkSHA256HelloWorld = "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	checkSHA256dEmpty     = "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"
	checkHMACSecretHello  = "734cc62f32841568f45715aeb9f4d7891324e6d948e4c6c60c0621cdac48623a"
	checkPBKDF2Reference  = "c5e478d59288c841aa530db6845c4c8d962893a001ce4e11a4963873aa98134a"
	checkBLAKE3Empty      = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
)

// runSelfcheck runs the engine's known-answer checks and reports each
// result. Any failure makes the command exit nonzero and print the
// engine's last recorded error when one exists.
func runSelfcheck(args []string) error {
	flags := pflag.NewFlagSet("selfcheck", pflag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	checks := []struct {
		name string
		run  func() error
	}{
		{name: "sha-256 known answer", run: checkHash},
		{name: "double sha-256 known answer", run: checkDoubleHash},
		{name: "blake3 known answer", run: checkFastHash},
		{name: "hmac-sha256 known answer", run: checkKeyedHash},
		{name: "pbkdf2 known answer", run: checkDeriveKey},
		{name: "wipe leaves zeros", run: checkWipe},
	}

	failed := 0
	for _, check := range checks {
		slog.Debug("running check", "name", check.name)
		if err := check.run(); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", check.name, err)
			continue
		}
		fmt.Printf("ok   %s\n", check.name)
	}

	if failed > 0 {
		if message, ok := primitive.LastEngineError(); ok {
			fmt.Fprintf(os.Stderr, "last engine error: %s\n", message)
		}
		return fmt.Errorf("selfcheck: %d of %d checks failed", failed, len(checks))
	}

	fmt.Printf("all %d checks passed\n", len(checks))
	fmt.Printf("engine: %s\n", primitive.EngineVersion())
	return nil
}

func expectDigest(digest primitive.Digest, err error, expected string) error {
	if err != nil {
		return err
	}
	if got := primitive.FormatDigest(digest); got != expected {
		return fmt.Errorf("got %s, want %s", got, expected)
	}
	return nil
}

func checkHash() error {
	digest, err := primitive.Hash([]byte("hello world"))
	return expectDigest(digest, err, checkSHA256HelloWorld)
}

func checkDoubleHash() error {
	digest, err := primitive.DoubleHash(nil)
	return expectDigest(digest, err, checkSHA256dEmpty)
}

func checkFastHash() error {
	digest, err := primitive.FastHash(nil)
	return expectDigest(digest, err, checkBLAKE3Empty)
}

func checkKeyedHash() error {
	tag, err := primitive.KeyedHash([]byte("secret"), []byte("hello world"))
	return expectDigest(tag, err, checkHMACSecretHello)
}

func checkDeriveKey() error {
	key, err := primitive.DeriveKey([]byte("password"), []byte("salt"), 4096, 32)
	if err != nil {
		return err
	}
	var digest primitive.Digest
	copy(digest[:], key)
	return expectDigest(digest, nil, checkPBKDF2Reference)
}

func checkWipe() error {
	buffer := []byte{1, 2, 3, 4, 5}
	primitive.Wipe(buffer)
	for index, value := range buffer {
		if value != 0 {
			return fmt.Errorf("byte %d is %d after wipe, want 0", index, value)
		}
	}
	return nil
}
