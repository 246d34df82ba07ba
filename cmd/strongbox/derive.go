// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/strongbox/lib/primitive"
	"github.com/bureau-foundation/strongbox/lib/secret"
)

// maxPassphraseBytes bounds passphrases read from a non-terminal
// stdin.
const maxPassphraseBytes = 4096

// runDerive derives a key with PBKDF2-HMAC-SHA256. The passphrase
// and the derived key both live in locked memory and are wiped on
// every exit path. Output is lowercase hex, or raw bytes with --raw.
func runDerive(args []string) error {
	flags := pflag.NewFlagSet("derive", pflag.ContinueOnError)
	salt := flags.StringP("salt", "s", "", "salt string (required; may be empty if given explicitly)")
	iterations := flags.IntP("iterations", "i", 0, "PBKDF2 iteration count (default from config)")
	length := flags.IntP("length", "l", 0, "derived key length in bytes (default from config)")
	passwordFile := flags.StringP("password-file", "p", "", "read the passphrase from this file instead of prompting")
	raw := flags.Bool("raw", false, "write raw key bytes to stdout instead of hex")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if !flags.Changed("salt") {
		return fmt.Errorf("derive: --salt is required")
	}
	if flags.NArg() != 0 {
		return fmt.Errorf("derive: unexpected arguments: %v", flags.Args())
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}
	if !flags.Changed("iterations") {
		*iterations = config.Iterations
	}
	if !flags.Changed("length") {
		*length = config.KeyLength
	}

	passphrase, err := readPassphrase(*passwordFile)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}
	defer passphrase.Close()

	slog.Debug("deriving key", "iterations", *iterations, "length", *length)

	key, err := primitive.DeriveKey(passphrase.Bytes(), []byte(*salt), *iterations, *length)
	if err != nil {
		return fmt.Errorf("derive: %w", err)
	}

	// Move the key into locked memory; NewFromBytes wipes the
	// transient slice.
	guarded, err := secret.NewFromBytes(key)
	if err != nil {
		secret.Zero(key)
		return fmt.Errorf("derive: guarding key: %w", err)
	}
	defer guarded.Close()

	if *raw {
		if _, err := guarded.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("derive: %w", err)
		}
		return nil
	}

	// Hex-encode into a wipeable buffer rather than a string, with
	// the trailing newline in place so no append reallocates a copy.
	encoded := make([]byte, hex.EncodedLen(guarded.Len())+1)
	hex.Encode(encoded, guarded.Bytes())
	encoded[len(encoded)-1] = '\n'
	defer secret.Zero(encoded)

	if _, err := os.Stdout.Write(encoded); err != nil {
		return fmt.Errorf("derive: writing output: %w", err)
	}
	return nil
}

// readPassphrase obtains the passphrase for key derivation: from a
// file when one is named, from a terminal with echo off and a
// confirmation prompt, or from a non-terminal stdin as a single
// trimmed line.
func readPassphrase(passwordFile string) (*secret.Buffer, error) {
	if passwordFile != "" {
		return secret.ReadFromPath(passwordFile)
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return secret.ReadFromPath("-")
	}

	fmt.Fprint(os.Stderr, "Passphrase: ")
	first, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm passphrase: ")
	second, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		secret.Zero(first)
		return nil, fmt.Errorf("reading confirmation: %w", err)
	}

	match := bytes.Equal(first, second)
	secret.Zero(second)
	if !match {
		secret.Zero(first)
		return nil, fmt.Errorf("passphrases do not match")
	}

	buffer, err := secret.NewFromBytes(first)
	if err != nil {
		secret.Zero(first)
		return nil, err
	}
	return buffer, nil
}
