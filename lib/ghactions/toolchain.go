// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"slices"
	"strings"
)

// RustToolchain describes the toolchain a job installs: the channel or
// version string, the rustup profile, whether it becomes the default,
// and any extra components and target triples. Builders are monotonic
// and value-returning; nothing is removed once added.
type RustToolchain struct {
	toolchain  string
	profile    string
	setDefault bool
	components []string
	targets    []string
}

// Rust starts a toolchain description for the given channel or version
// string (for example "1.73" or "nightly-2023-10-14").
func Rust(version string) RustToolchain {
	return RustToolchain{toolchain: version}
}

// IsNightly reports whether the toolchain names an unstable channel.
// Jobs built on a nightly toolchain route every command through
// rustup's nightly wrapper during local replay.
func (t RustToolchain) IsNightly() bool {
	return strings.HasPrefix(t.toolchain, "nightly")
}

// Minimal selects the minimal rustup profile.
func (t RustToolchain) Minimal() RustToolchain {
	t.profile = "minimal"
	return t
}

// Default makes the installed toolchain the default one.
func (t RustToolchain) Default() RustToolchain {
	t.setDefault = true
	return t
}

// Clippy adds the clippy component.
func (t RustToolchain) Clippy() RustToolchain {
	t = t.clone()
	t.components = append(t.components, "clippy")
	return t
}

// Rustfmt adds the rustfmt component.
func (t RustToolchain) Rustfmt() RustToolchain {
	t = t.clone()
	t.components = append(t.components, "rustfmt")
	return t
}

// Wasm adds the wasm32-unknown-unknown compilation target.
func (t RustToolchain) Wasm() RustToolchain {
	t = t.clone()
	t.targets = append(t.targets, "wasm32-unknown-unknown")
	return t
}

// clone detaches the slice fields so value-receiver builders never
// alias a sibling's backing array.
func (t RustToolchain) clone() RustToolchain {
	t.components = slices.Clone(t.components)
	t.targets = slices.Clone(t.targets)
	return t
}

// Step converts the description into the toolchain install action.
// Parameter order is fixed: toolchain, profile, default, components,
// targets. List values are comma-joined the way the action expects.
func (t RustToolchain) Step() Step {
	action := NewAction("ructions/toolchain@v2").With("toolchain", t.toolchain)

	if t.profile != "" {
		action = action.With("profile", t.profile)
	}
	if t.setDefault {
		action = action.With("default", "true")
	}
	if len(t.components) > 0 {
		action = action.With("components", strings.Join(t.components, ", "))
	}
	if t.targets != nil {
		action = action.With("targets", strings.Join(t.targets, ", "))
	}

	return action.Step()
}
