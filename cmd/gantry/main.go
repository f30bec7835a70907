// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

// Command gantry renders the repository's GitHub Actions workflow from
// the pipeline description and replays the same pipeline directly on
// the local machine.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gantry-build/gantry/cmd/gantry/cli"
	"github.com/gantry-build/gantry/lib/version"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like ci --check)
		// return an ExitError with the desired exit code. Don't print
		// a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rootCommand().Execute(ctx, os.Args[1:], cli.NewCommandLogger())
}

// rootCommand builds the complete gantry command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name: "gantry",
		Description: `Gantry: CI pipeline generation and local replay.

The verification pipeline is described once, in code. From that one
description gantry renders the committed GitHub Actions workflow
document and replays the same commands directly on this machine.`,
		Subcommands: []*cli.Command{
			ciCommand(),
			runCommand(),
			jobsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("gantry %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Regenerate the committed workflow file",
				Command:     "gantry ci",
			},
			{
				Description: "Verify the committed workflow is current",
				Command:     "gantry ci --check",
			},
			{
				Description: "Replay the whole pipeline on this machine",
				Command:     "gantry run",
			},
			{
				Description: "Replay only the lint job",
				Command:     "gantry run --job lints",
			},
			{
				Description: "List the jobs the pipeline defines",
				Command:     "gantry jobs",
			},
		},
	}
}
