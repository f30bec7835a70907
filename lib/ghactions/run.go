// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"context"
	"strings"
)

// Run is the executable step kind: one command rendered as an inline
// "run:" line, or a sequence of commands rendered as a block scalar
// with one line each. An optional working-directory override applies
// to every contained command in both the document and local replay.
type Run struct {
	commands  []Command
	block     bool
	directory string
}

// Cmd builds a single-command run step body.
func Cmd(program string, args ...string) Run {
	return Run{commands: []Command{NewCommand(program, args...)}}
}

// Script builds a block-form run from argv lines. Each line's first
// element is the program, the rest are its arguments. Lines execute in
// order during local replay, each as its own subprocess.
//
// Panics on an empty line: a command without a program is a
// programming error in the pipeline description, caught at
// construction rather than surfacing as a confusing exec failure.
func Script(lines ...[]string) Run {
	commands := make([]Command, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			panic("ghactions: empty command line in script")
		}
		commands = append(commands, NewCommand(line[0], line[1:]...))
	}
	return Run{commands: commands, block: true}
}

// InDirectory returns a copy of the run with the working directory set.
func (r Run) InDirectory(directory string) Run {
	r.directory = directory
	return r
}

// Step wraps the run as a pipeline step.
func (r Run) Step() Step {
	return Step{kind: stepRun, run: r}
}

// Execute hands each contained command to the runner in order,
// stopping at the first failure.
func (r Run) Execute(ctx context.Context, runner Runner) error {
	for _, command := range r.commands {
		if err := runner.Run(ctx, command.Invocation(r.directory)); err != nil {
			return err
		}
	}
	return nil
}

func (r Run) render(b *strings.Builder) {
	b.WriteString("    - ")

	if r.directory != "" {
		b.WriteString("working-directory: ")
		b.WriteString(r.directory)
		b.WriteString("\n      ")
	}

	if r.block {
		b.WriteString("run: |\n")
		for _, command := range r.commands {
			b.WriteString("        ")
			b.WriteString(command.String())
			b.WriteString("\n")
		}
		return
	}

	b.WriteString("run: ")
	b.WriteString(r.commands[0].String())
	b.WriteString("\n")
}
