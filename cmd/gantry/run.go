// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gantry-build/gantry/cmd/gantry/cli"
	"github.com/gantry-build/gantry/lib/ci"
	"github.com/gantry-build/gantry/lib/ghactions"
	"github.com/gantry-build/gantry/lib/pins"
)

// runCommand returns the "run" subcommand that replays the pipeline
// directly on the local machine.
func runCommand() *cli.Command {
	var jobName string
	var pinsPath string

	return &cli.Command{
		Name:    "run",
		Summary: "Replay the pipeline on this machine",
		Description: `Execute the standard pipeline's commands as local subprocesses, in
the same order the workflow document lists them. Jobs bound to other
platforms are skipped; commands from nightly jobs run through "rustup
run nightly". Output streams straight to the terminal, and the first
failing command aborts the replay.

GitHub-side setup steps (checkout, toolchain install, cache restore)
exist only in the rendered document. The replay assumes the machine it
runs on already has its toolchain; only run steps execute.`,
		Usage: "gantry run [flags]",
		Examples: []cli.Example{
			{
				Description: "Replay every job for this platform",
				Command:     "gantry run",
			},
			{
				Description: "Replay only the test jobs",
				Command:     "gantry run --job tests",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.StringVar(&jobName, "job", "", "replay only jobs with this name (e.g. tests, lints)")
			flagSet.StringVar(&pinsPath, "pins", pins.DefaultPath, "tool version pins file")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			pinned, err := pins.Load(pinsPath)
			if err != nil {
				return err
			}

			pipeline := ci.PinnedWorkflow(pinned)
			if jobName != "" {
				selected := pipeline.Select(jobName)
				if len(selected.Workflow().Jobs) == 0 {
					return fmt.Errorf("no job named %q in the pipeline (have: %s)",
						jobName, strings.Join(jobNames(pipeline), ", "))
				}
				pipeline = selected
			}

			logger.Info("replaying pipeline", "jobs", len(pipeline.Workflow().Jobs))
			runner := &ghactions.ExecRunner{Logger: logger}
			if err := pipeline.Run(ctx, runner); err != nil {
				return err
			}
			logger.Info("pipeline replay complete")
			return nil
		},
	}
}

// jobNames returns the distinct job names in the pipeline, sorted.
func jobNames(pipeline *ci.CI) []string {
	seen := make(map[string]bool)
	var names []string
	for _, job := range pipeline.Workflow().Jobs {
		if !seen[job.Name] {
			seen[job.Name] = true
			names = append(names, job.Name)
		}
	}
	slices.Sort(names)
	return names
}
