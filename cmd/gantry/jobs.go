// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/gantry-build/gantry/cmd/gantry/cli"
	"github.com/gantry-build/gantry/lib/ci"
	"github.com/gantry-build/gantry/lib/ghactions"
	"github.com/gantry-build/gantry/lib/pins"
)

// jobsCommand returns the "jobs" subcommand that lists what the
// pipeline defines.
func jobsCommand() *cli.Command {
	var outputJSON bool
	var pinsPath string

	return &cli.Command{
		Name:    "jobs",
		Summary: "List the jobs the pipeline defines",
		Description: `List each job in the standard pipeline with the platform it targets
and its rendered step count. The listing reflects the document exactly:
it is produced by parsing the same text "gantry ci" writes.`,
		Usage: "gantry jobs [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the pipeline's jobs",
				Command:     "gantry jobs",
			},
			{
				Description: "Job listing as JSON",
				Command:     "gantry jobs --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("jobs", pflag.ContinueOnError)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON instead of a table")
			flagSet.StringVar(&pinsPath, "pins", pins.DefaultPath, "tool version pins file")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			pinned, err := pins.Load(pinsPath)
			if err != nil {
				return err
			}

			document := ci.PinnedWorkflow(pinned).Workflow().Document()
			summary, err := ghactions.ParseDocument(document)
			if err != nil {
				return fmt.Errorf("parsing rendered document: %w", err)
			}

			type jobEntry struct {
				Job    string `json:"job"`
				RunsOn string `json:"runs_on"`
				Steps  int    `json:"steps"`
			}

			entries := make([]jobEntry, 0, len(summary.Jobs))
			for _, job := range summary.Jobs {
				entries = append(entries, jobEntry{
					Job:    job.Identity,
					RunsOn: job.RunsOn,
					Steps:  job.Steps,
				})
			}

			if outputJSON {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal JSON: %w", err)
				}
				fmt.Fprintln(os.Stdout, string(data))
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(writer, "JOB\tRUNS-ON\tSTEPS\n")
			for _, entry := range entries {
				fmt.Fprintf(writer, "%s\t%s\t%d\n", entry.Job, entry.RunsOn, entry.Steps)
			}
			return writer.Flush()
		},
	}
}
