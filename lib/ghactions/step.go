// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"context"
	"strings"
)

type stepKind int

const (
	stepEmpty stepKind = iota
	stepMulti
	stepAction
	stepRun
)

// Step is one unit of pipeline work: an action reference, a command
// run, an ordered composite of steps, or nothing. The zero value is
// the empty step, which renders nothing and executes nothing; When
// uses it for conditional inclusion.
type Step struct {
	kind   stepKind
	steps  []Step
	action Action
	run    Run
}

// MultiStep groups steps into one composite. Rendering and execution
// walk the children in order; the grouping itself leaves no trace in
// either materialization.
func MultiStep(steps ...Step) Step {
	return Step{kind: stepMulti, steps: steps}
}

// When returns the step if condition holds, and the empty step
// otherwise. This keeps conditional steps expressible inline in a
// builder chain.
func When(condition bool, step Step) Step {
	if condition {
		return step
	}
	return Step{}
}

// Install builds the pinned installation of a cargo-distributed tool.
// It is a run step, not an action reference: the document gains a
// "cargo install" line and local replay executes the same install.
func Install(crateName, version string) Step {
	return Cmd("cargo", "install", crateName, "--locked", "--version", version).Step()
}

// InstallRust is the job preamble: fetch the source, install the
// requested toolchain, restore the dependency cache. Every job built
// by the ci package starts with it.
func InstallRust(toolchain RustToolchain) Step {
	return MultiStep(Checkout(), toolchain.Step(), RustCache())
}

// Execute replays the step locally. Empty steps and action references
// are no-ops, composites recurse in order, and run steps hand their
// commands to the runner. The first failure stops the walk.
func (s Step) Execute(ctx context.Context, runner Runner) error {
	switch s.kind {
	case stepMulti:
		for _, child := range s.steps {
			if err := child.Execute(ctx, runner); err != nil {
				return err
			}
		}
	case stepRun:
		return s.run.Execute(ctx, runner)
	}
	return nil
}

func (s Step) render(b *strings.Builder) {
	switch s.kind {
	case stepMulti:
		for _, child := range s.steps {
			child.render(b)
		}
	case stepAction:
		s.action.render(b)
	case stepRun:
		s.run.render(b)
	}
}
