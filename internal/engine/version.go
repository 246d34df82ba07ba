// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"runtime/debug"
)

// unknownVersion is substituted for any version component that cannot
// be read from build metadata. Version never fails and never returns
// an empty string; a binary stripped of build info still identifies
// itself.
const unknownVersion = "unknown"

// Version identifies the engine backends: the Go runtime version plus
// the module versions of the BLAKE3 and PBKDF2 implementations, read
// from the binary's embedded build metadata. Components that are
// missing from the metadata report as "unknown".
func Version() string {
	goVersion := unknownVersion
	blake3Version := unknownVersion
	cryptoVersion := unknownVersion

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		for _, dependency := range info.Deps {
			module := dependency
			if module.Replace != nil {
				module = module.Replace
			}
			switch dependency.Path {
			case "github.com/zeebo/blake3":
				if module.Version != "" {
					blake3Version = module.Version
				}
			case "golang.org/x/crypto":
				if module.Version != "" {
					cryptoVersion = module.Version
				}
			}
		}
	}

	return fmt.Sprintf("strongbox-engine %s; blake3 %s; x/crypto %s",
		goVersion, blake3Version, cryptoVersion)
}
