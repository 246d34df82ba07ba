// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// configEnvironmentVariable names the config file. There is no
// search-path discovery: the file named here is the single source of
// defaults, and when the variable is unset the built-in defaults
// apply. Flags override config values either way.
const configEnvironmentVariable = "STRONGBOX_CONFIG"

// algorithmNames are the digest algorithms the hash subcommand
// accepts.
var algorithmNames = []string{"sha256", "sha256d", "blake3"}

// toolConfig holds operator defaults for the subcommands.
type toolConfig struct {
	// Algorithm is the default digest algorithm for the hash
	// subcommand: sha256, sha256d, or blake3.
	Algorithm string `yaml:"algorithm"`

	// Iterations is the default PBKDF2 iteration count for the
	// derive subcommand.
	Iterations int `yaml:"iterations"`

	// KeyLength is the default derived key length in bytes for the
	// derive subcommand.
	KeyLength int `yaml:"key_length"`
}

// defaultConfig returns the built-in defaults used when no config
// file is present.
func defaultConfig() toolConfig {
	return toolConfig{
		Algorithm:  "sha256",
		Iterations: 600000,
		KeyLength:  32,
	}
}

// loadConfig returns the defaults overlaid with the file named by
// STRONGBOX_CONFIG, when set. An unreadable or invalid file is an
// explicit error, never silently ignored.
func loadConfig() (toolConfig, error) {
	path := os.Getenv(configEnvironmentVariable)
	if path == "" {
		return defaultConfig(), nil
	}
	return loadConfigFile(path)
}

// loadConfigFile loads defaults from a specific file path. Fields
// absent from the file keep their built-in values.
func loadConfigFile(path string) (toolConfig, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return toolConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return toolConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.validate(); err != nil {
		return toolConfig{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return config, nil
}

// validate checks the configuration for errors.
func (c toolConfig) validate() error {
	var errs []error

	if !slices.Contains(algorithmNames, c.Algorithm) {
		errs = append(errs, fmt.Errorf("algorithm must be one of: %v", algorithmNames))
	}
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be at least 1, got %d", c.Iterations))
	}
	if c.KeyLength < 1 {
		errs = append(errs, fmt.Errorf("key_length must be at least 1, got %d", c.KeyLength))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
