// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Invocation is one fully resolved subprocess call: the program, its
// argument vector, and the working directory (empty means inherit).
type Invocation struct {
	Program   string
	Args      []string
	Directory string
}

// String renders the invocation as a space-joined command line for
// logs and error messages.
func (inv Invocation) String() string {
	if len(inv.Args) == 0 {
		return inv.Program
	}
	return inv.Program + " " + strings.Join(inv.Args, " ")
}

// Runner executes resolved invocations. It is the seam between the
// pipeline model and the operating system: local replay hands every
// command through a Runner, so tests substitute a recording fake and
// nightly routing wraps the real one.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner runs invocations as real subprocesses with the output
// streams inherited from the calling process, the way a developer
// would run the same commands by hand.
type ExecRunner struct {
	// Stdout and Stderr receive the subprocess output. When nil, the
	// calling process's own streams are used.
	Stdout io.Writer
	Stderr io.Writer

	// Logger, when set, records each command and its duration.
	Logger *slog.Logger
}

// Run spawns the invocation and blocks until it exits. A non-zero
// exit or spawn failure is returned as an error naming the command;
// the caller stops at the first failure.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	startTime := time.Now()

	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Dir = inv.Directory
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if r.Logger != nil {
		r.Logger.Info("running command", "command", inv.String(), "directory", inv.Directory)
	}

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return fmt.Errorf("%s: exit code %d", inv, exitError.ExitCode())
		}
		return fmt.Errorf("%s: %w", inv, err)
	}

	if r.Logger != nil {
		r.Logger.Info("command finished", "command", inv.String(), "duration", formatDuration(time.Since(startTime)))
	}
	return nil
}

// NightlyRunner decorates a base runner, routing every invocation
// through the pinned nightly toolchain: "cargo test" becomes "rustup
// run nightly cargo test". The wrapper names the nightly channel
// literally; the host's rustup resolves it to whichever nightly is
// installed, while the fully pinned version string appears only in the
// rendered document. Callers stay ignorant of the rewrite.
type NightlyRunner struct {
	Base Runner
}

// Run rewrites the invocation and delegates to the base runner.
func (r NightlyRunner) Run(ctx context.Context, inv Invocation) error {
	inv.Args = append([]string{"run", "nightly", inv.Program}, inv.Args...)
	inv.Program = "rustup"
	return r.Base.Run(ctx, inv)
}

func formatDuration(duration time.Duration) string {
	return fmt.Sprintf("%.1fs", duration.Seconds())
}
