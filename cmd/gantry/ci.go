// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gantry-build/gantry/cmd/gantry/cli"
	"github.com/gantry-build/gantry/lib/ci"
	"github.com/gantry-build/gantry/lib/fileutil"
	"github.com/gantry-build/gantry/lib/ghactions"
	"github.com/gantry-build/gantry/lib/pins"
)

// ciCommand returns the "ci" subcommand that renders the workflow
// document and writes or verifies the committed copy.
func ciCommand() *cli.Command {
	var check bool
	var pinsPath string

	return &cli.Command{
		Name:    "ci",
		Summary: "Write the GitHub Actions workflow document",
		Description: `Build the standard pipeline with the pinned tool versions and write
the rendered document to .github/workflows/ci-tests.yml, creating
parent directories as needed. The file is left untouched when its
content already matches.

With --check nothing is written: the command verifies the committed
document matches what the pipeline renders, reports drifted jobs, and
exits 1 when the file is stale or missing. CI runs this mode so
regeneration has to happen at development time.`,
		Usage: "gantry ci [flags]",
		Examples: []cli.Example{
			{
				Description: "Regenerate the workflow file",
				Command:     "gantry ci",
			},
			{
				Description: "Fail if the committed file is stale",
				Command:     "gantry ci --check",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("ci", pflag.ContinueOnError)
			flagSet.BoolVar(&check, "check", false, "verify the committed document instead of writing")
			flagSet.StringVar(&pinsPath, "pins", pins.DefaultPath, "tool version pins file")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			pinned, err := pins.Load(pinsPath)
			if err != nil {
				return err
			}

			workflow := ci.PinnedWorkflow(pinned).Workflow()
			err = workflow.Write(check)
			if err == nil {
				if check {
					logger.Info("workflow document is current", "path", workflow.Path())
				} else {
					logger.Info("workflow document written", "path", workflow.Path())
				}
				return nil
			}
			if !errors.Is(err, fileutil.ErrCheckFailed) {
				return err
			}

			reportDrift(logger, workflow)
			fmt.Fprintf(os.Stderr, "%s is stale: run 'gantry ci' and commit the result\n", workflow.Path())
			return &cli.ExitError{Code: 1}
		},
	}
}

// reportDrift logs the per-job difference between the committed
// document and the one the pipeline renders. Best effort: when the
// committed file is missing or does not parse there is no job list to
// diff, and drift inside a job's steps shows up only in the byte
// comparison that already failed.
func reportDrift(logger *slog.Logger, workflow *ghactions.Workflow) {
	fresh, err := ghactions.ParseDocument(workflow.Document())
	if err != nil {
		return
	}

	data, err := os.ReadFile(workflow.Path())
	if err != nil {
		logger.Warn("committed document missing", "path", workflow.Path())
		return
	}
	committed, err := ghactions.ParseDocument(string(data))
	if err != nil {
		logger.Warn("committed document does not parse", "path", workflow.Path(), "error", err)
		return
	}

	committedJobs := make(map[string]bool)
	for _, identity := range committed.Identities() {
		committedJobs[identity] = true
	}
	freshJobs := make(map[string]bool)
	for _, identity := range fresh.Identities() {
		freshJobs[identity] = true
	}

	for _, identity := range fresh.Identities() {
		if !committedJobs[identity] {
			logger.Warn("job missing from committed document", "job", identity)
		}
	}
	for _, identity := range committed.Identities() {
		if !freshJobs[identity] {
			logger.Warn("job no longer in pipeline", "job", identity)
		}
	}
}
