// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import "strings"

// Action references an external reusable action ("uses:") with ordered
// key/value parameters. Actions are render-only: the hosted runner
// performs the install or setup they describe, local replay never
// executes them.
type Action struct {
	uses string
	with []withParam
}

type withParam struct {
	key   string
	value string
}

// NewAction builds an action step body referencing uses.
func NewAction(uses string) Action {
	return Action{uses: uses}
}

// With returns a copy of the action with a parameter appended.
// Parameters render in insertion order.
func (a Action) With(key, value string) Action {
	with := make([]withParam, len(a.with), len(a.with)+1)
	copy(with, a.with)
	a.with = append(with, withParam{key: key, value: value})
	return a
}

// Step wraps the action as a pipeline step.
func (a Action) Step() Step {
	return Step{kind: stepAction, action: a}
}

func (a Action) render(b *strings.Builder) {
	b.WriteString("    - uses: ")
	b.WriteString(a.uses)
	b.WriteString("\n")

	if len(a.with) == 0 {
		return
	}

	b.WriteString("      with:\n")
	for _, param := range a.with {
		b.WriteString("        ")
		b.WriteString(param.key)
		b.WriteString(": ")
		b.WriteString(param.value)
		b.WriteString("\n")
	}
}

// Checkout fetches the repository source. Every job needs it before
// any command can run against the working tree.
func Checkout() Step {
	return NewAction("actions/checkout@v3").Step()
}

// RustCache restores and saves the cargo dependency cache.
func RustCache() Step {
	return NewAction("Swatinem/rust-cache@v2").Step()
}

// UploadArtifact publishes a file or directory from the job workspace
// under the given artifact name.
func UploadArtifact(name, path string) Step {
	return NewAction("actions/upload-artifact@v3").
		With("name", name).
		With("path", path).
		Step()
}
