// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

// Package pins holds the tool versions the standard pipeline is built
// against. Repositories override them in a gantry.jsonc file at the
// repository root (JSON extended with comments and trailing commas);
// anything not set there falls back to the defaults below.
package pins

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// DefaultPath is where the CLI looks for the pins file when no
// --pins flag is given.
const DefaultPath = "gantry.jsonc"

// Pins are the pinned versions the standard pipeline builds with.
type Pins struct {
	// Rust is the stable toolchain for the test and release-test jobs.
	Rust string `json:"rust"`

	// Nightly is the toolchain for the lint job. Must name a nightly
	// channel: rustfmt and cargo-udeps need unstable features.
	Nightly string `json:"nightly"`

	// Udeps is the cargo-udeps version the lint job installs.
	Udeps string `json:"udeps"`
}

// Default returns the versions used when no pins file overrides them.
func Default() Pins {
	return Pins{
		Rust:    "1.73",
		Nightly: "nightly-2023-10-14",
		Udeps:   "0.1.43",
	}
}

// Load reads a JSONC pins file and fills any field it leaves unset
// from the defaults. A missing file is not an error: the defaults are
// returned as-is, so a repository without a pins file still gets the
// standard pipeline.
func Load(path string) (Pins, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Pins{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var loaded Pins
	if err := json.Unmarshal(jsonc.ToJSON(data), &loaded); err != nil {
		return Pins{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	defaults := Default()
	if loaded.Rust == "" {
		loaded.Rust = defaults.Rust
	}
	if loaded.Nightly == "" {
		loaded.Nightly = defaults.Nightly
	}
	if loaded.Udeps == "" {
		loaded.Udeps = defaults.Udeps
	}
	return loaded, nil
}
