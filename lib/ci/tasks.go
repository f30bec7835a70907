// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ci

import (
	"context"
	"fmt"

	"github.com/gantry-build/gantry/lib/ghactions"
)

// Tasks is the builder form of one job: a name, the platform it
// targets, and the steps appended so far. Construction prepends the
// toolchain preamble (checkout, toolchain install, cache restore), so
// every job starts identically before its own steps. Builder methods
// append one step each and return the receiver for chaining.
//
// Whether the toolchain is a nightly is fixed at construction and
// conditions how every later command is invoked during local replay.
type Tasks struct {
	name     string
	platform ghactions.Platform
	nightly  bool
	steps    []ghactions.Step
}

// NewTasks starts a job named name on platform, prepared with the
// given toolchain.
func NewTasks(name string, platform ghactions.Platform, toolchain ghactions.RustToolchain) *Tasks {
	t := &Tasks{
		name:     name,
		platform: platform,
		nightly:  toolchain.IsNightly(),
	}
	return t.Step(ghactions.InstallRust(toolchain))
}

// Name returns the job name (without the platform suffix).
func (t *Tasks) Name() string {
	return t.name
}

// Step appends a step.
func (t *Tasks) Step(step ghactions.Step) *Tasks {
	t.steps = append(t.steps, step)
	return t
}

// Cmd appends a single-command run step.
func (t *Tasks) Cmd(program string, args ...string) *Tasks {
	return t.Step(ghactions.Cmd(program, args...).Step())
}

// Script appends a block run step built from argv lines.
func (t *Tasks) Script(lines ...[]string) *Tasks {
	return t.Step(ghactions.Script(lines...).Step())
}

// Tests appends the standard verification sequence: generated code is
// current, lints are clean with warnings as errors, the test suite
// passes, everything builds, and the documentation builds.
func (t *Tasks) Tests() *Tasks {
	return t.
		Cmd("cargo", "xtask", "codegen", "--check").
		Cmd("cargo", "clippy", "--all-targets", "--", "-D", "warnings", "-D", "clippy::all").
		Cmd("cargo", "test").
		Cmd("cargo", "build", "--all-targets").
		Cmd("cargo", "doc")
}

// ReleaseTests appends the release-mode test run.
func (t *Tasks) ReleaseTests() *Tasks {
	return t.Cmd("cargo", "test", "--benches", "--tests", "--release")
}

// Lints appends the formatting check and the unused-dependency scan,
// installing cargo-udeps at the pinned version first.
func (t *Tasks) Lints(udepsVersion string) *Tasks {
	return t.
		Cmd("cargo", "fmt", "--all", "--", "--check").
		Step(ghactions.Install("cargo-udeps", udepsVersion)).
		Cmd("cargo", "udeps", "--all-targets")
}

// Run replays the job locally. A job whose platform does not match
// the host is skipped silently: the document describes every
// platform, but any one machine only ever runs its own. On a matching
// host the steps execute in append order through the runner (wrapped
// for nightly toolchains), and the first failure aborts the job.
func (t *Tasks) Run(ctx context.Context, runner ghactions.Runner) error {
	if !t.platform.IsCurrent() {
		return nil
	}

	if t.nightly {
		runner = ghactions.NightlyRunner{Base: runner}
	}

	for _, step := range t.steps {
		if err := step.Execute(ctx, runner); err != nil {
			return fmt.Errorf("job %s-%s: %w", t.name, t.platform, err)
		}
	}
	return nil
}
