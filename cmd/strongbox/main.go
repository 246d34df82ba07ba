// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/strongbox/lib/primitive"
	"github.com/bureau-foundation/strongbox/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	arguments := os.Args[1:]

	// The root --verbose flag is consumed before subcommand dispatch
	// so every subcommand shares the same logging setup. Default is
	// warn: stdout stays clean for pipelines.
	logLevel := slog.LevelWarn
	if len(arguments) > 0 && (arguments[0] == "--verbose" || arguments[0] == "-v") {
		logLevel = slog.LevelDebug
		arguments = arguments[1:]
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if len(arguments) < 1 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	subcommand := arguments[0]
	switch subcommand {
	case "hash":
		return runHash(arguments[1:])
	case "mac":
		return runMac(arguments[1:])
	case "derive":
		return runDerive(arguments[1:])
	case "selfcheck":
		return runSelfcheck(arguments[1:])
	case "version":
		fmt.Printf("strongbox %s\n", version.Info())
		fmt.Printf("engine: %s\n", primitive.EngineVersion())
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", subcommand)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: strongbox [--verbose] <subcommand> [flags]

Subcommands:
  hash        Digest a file or stdin (sha256, sha256d, blake3)
  mac         Compute or verify an HMAC-SHA256 tag
  derive      Derive a key with PBKDF2-HMAC-SHA256
  selfcheck   Run the engine's known-answer checks
  version     Print build and engine version information

Run 'strongbox <subcommand> --help' for subcommand flags.
`)
}

// readInput reads the file at path, or all of stdin when path is "-"
// or empty. Inputs to hash and mac are messages, not secrets; they
// are read onto the ordinary heap.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
