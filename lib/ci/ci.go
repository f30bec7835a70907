// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

// Package ci assembles the repository's verification pipeline from
// jobs and materializes it either as the committed GitHub Actions
// document or as a direct local replay of the same steps.
//
// The standard pipeline is fixed policy: a test job and a
// release-test job per supported platform on the pinned stable
// toolchain, plus one lint job on a pinned nightly. Repositories with
// other needs build an arbitrary pipeline with [CI.Job].
package ci

import (
	"context"

	"github.com/gantry-build/gantry/lib/ghactions"
	"github.com/gantry-build/gantry/lib/pins"
)

// workflowName names the rendered document; the file lands at
// .github/workflows/ci-tests.yml.
const workflowName = "ci-tests"

// CI is the pipeline under construction: an ordered list of jobs.
// Terminal operations fold it into a [ghactions.Workflow] for
// rendering or replay every job in order.
type CI struct {
	tasks []*Tasks
}

// New returns an empty pipeline.
func New() *CI {
	return &CI{}
}

// StandardWorkflow returns the canonical pipeline built with the
// default pins.
func StandardWorkflow() *CI {
	return PinnedWorkflow(pins.Default())
}

// PinnedWorkflow returns the canonical pipeline for the given pins:
// tests and release-tests on every supported platform, then lints.
func PinnedWorkflow(p pins.Pins) *CI {
	return New().
		StandardTests(p.Rust).
		StandardReleaseTests(p.Rust).
		StandardLints(p.Nightly, p.Udeps)
}

// StandardTests adds a "tests" job per supported platform on the
// given stable toolchain with clippy available.
func (c *CI) StandardTests(rustVersion string) *CI {
	for _, platform := range ghactions.Platforms() {
		c.AddJob(NewTasks(
			"tests",
			platform,
			ghactions.Rust(rustVersion).Minimal().Default().Clippy(),
		).Tests())
	}
	return c
}

// StandardReleaseTests adds a "release-tests" job per supported
// platform on the given stable toolchain.
func (c *CI) StandardReleaseTests(rustVersion string) *CI {
	for _, platform := range ghactions.Platforms() {
		c.AddJob(NewTasks(
			"release-tests",
			platform,
			ghactions.Rust(rustVersion).Minimal().Default(),
		).ReleaseTests())
	}
	return c
}

// StandardLints adds the single lint job on Ubuntu with the pinned
// nightly toolchain and rustfmt.
func (c *CI) StandardLints(nightlyVersion, udepsVersion string) *CI {
	return c.Job(NewTasks(
		"lints",
		ghactions.UbuntuLatest,
		ghactions.Rust(nightlyVersion).Minimal().Default().Rustfmt(),
	).Lints(udepsVersion))
}

// Job appends a job and returns the pipeline for chaining.
func (c *CI) Job(tasks *Tasks) *CI {
	c.AddJob(tasks)
	return c
}

// AddJob appends a job.
func (c *CI) AddJob(tasks *Tasks) {
	c.tasks = append(c.tasks, tasks)
}

// Select returns a new pipeline holding only the jobs with the given
// name, in their original order. Selecting a name no job carries
// yields an empty pipeline, which renders and replays as nothing.
func (c *CI) Select(name string) *CI {
	selected := New()
	for _, tasks := range c.tasks {
		if tasks.name == name {
			selected.AddJob(tasks)
		}
	}
	return selected
}

// Workflow folds the pipeline into the named document: the fixed
// triggers, then one job per task list in append order.
func (c *CI) Workflow() *ghactions.Workflow {
	workflow := ghactions.NewWorkflow(workflowName).
		OnEvents(ghactions.Push, ghactions.PullRequest)

	for _, tasks := range c.tasks {
		workflow.AddJob(tasks.name, tasks.platform, tasks.steps)
	}
	return workflow
}

// Write renders the pipeline and persists the document, or verifies
// it in check mode without writing.
func (c *CI) Write(check bool) error {
	return c.Workflow().Write(check)
}

// Run replays every job in append order. Platform gating happens per
// job; a failure in any job aborts the ones after it, with no
// isolation between jobs.
func (c *CI) Run(ctx context.Context, runner ghactions.Runner) error {
	for _, tasks := range c.tasks {
		if err := tasks.Run(ctx, runner); err != nil {
			return err
		}
	}
	return nil
}
