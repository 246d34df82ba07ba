// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/strongbox/lib/primitive"
	"github.com/bureau-foundation/strongbox/lib/secret"
)

// maxKeyBytes bounds keys read from stdin. HMAC accepts any key
// length; the bound catches a misdirected stream, not a long key.
const maxKeyBytes = 1 << 20

// runMac computes the HMAC-SHA256 tag of a file or stdin, with the
// key held in locked memory and wiped before returning. With --verify
// the computed tag is compared in constant time and a mismatch is an
// error.
func runMac(args []string) error {
	flags := pflag.NewFlagSet("mac", pflag.ContinueOnError)
	keyFile := flags.StringP("key-file", "k", "", "key file; \"-\" reads the raw key from stdin")
	verify := flags.String("verify", "", "hex tag to check the input against")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *keyFile == "" {
		return fmt.Errorf("mac: --key-file is required")
	}
	if flags.NArg() > 1 {
		return fmt.Errorf("mac: at most one input file, got %d", flags.NArg())
	}

	// Keys from a file follow the trimmed-text convention; keys from
	// stdin are read raw so binary keys survive intact. A stdin key
	// means the message must name a file.
	var key *secret.Buffer
	var err error
	if *keyFile == "-" {
		if flags.NArg() == 0 {
			return fmt.Errorf("mac: stdin carries the key; name the input file as an argument")
		}
		key, err = secret.NewFromReader(os.Stdin, maxKeyBytes)
	} else {
		key, err = secret.ReadFromPath(*keyFile)
	}
	if err != nil {
		return fmt.Errorf("mac: reading key: %w", err)
	}
	defer key.Close()

	data, err := readInput(flags.Arg(0))
	if err != nil {
		return err
	}
	slog.Debug("computing tag", "key_bytes", key.Len(), "message_bytes", len(data))

	tag, err := primitive.KeyedHash(key.Bytes(), data)
	if err != nil {
		return fmt.Errorf("mac: %w", err)
	}

	if *verify != "" {
		expected, err := primitive.ParseDigest(*verify)
		if err != nil {
			return fmt.Errorf("mac: bad --verify tag: %w", err)
		}
		if subtle.ConstantTimeCompare(tag[:], expected[:]) != 1 {
			return fmt.Errorf("mac: verification failed")
		}
		fmt.Println("ok")
		return nil
	}

	fmt.Println(primitive.FormatDigest(tag))
	return nil
}
