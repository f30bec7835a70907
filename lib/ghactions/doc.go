// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

// Package ghactions models GitHub Actions workflows as values that can
// be materialized two ways from a single description: rendered into the
// workflow document committed under .github/workflows, or replayed
// directly on the local machine without the hosted runner.
//
// The model is a small tagged union. A [Step] is an action reference
// (render-only), a [Run] of one or more commands (rendered and
// executed), an ordered composite, or nothing. Jobs bind steps to a
// [Platform]; a [Workflow] binds jobs to trigger events and renders
// byte-for-byte deterministically, so check mode can diff the output
// against the committed copy.
//
// Local replay walks the same structure. Only Run steps spawn
// subprocesses, action references are assumed to be the hosted
// runner's responsibility, and a job whose platform does not match the
// host is skipped entirely. Execution goes through the [Runner]
// interface so tests substitute a recording fake for the subprocess
// layer, and so nightly toolchain routing stays a decorator
// ([NightlyRunner]) instead of a conditional in every caller.
package ghactions
