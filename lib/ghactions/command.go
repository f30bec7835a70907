// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"slices"
	"strings"
)

// Command is a single program invocation with its argument list.
// Immutable after construction.
type Command struct {
	program string
	args    []string
}

// NewCommand builds a command from a program name and its arguments.
func NewCommand(program string, args ...string) Command {
	return Command{program: program, args: slices.Clone(args)}
}

// String renders the command as a single space-joined line, exactly as
// it appears after "run:" in the workflow document. Arguments are not
// quoted or escaped; an argument containing spaces renders ambiguously.
// That is a known limitation of the document format, not of local
// replay, which passes the argv to the process untouched.
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.program
	}
	return c.program + " " + strings.Join(c.args, " ")
}

// Invocation returns the subprocess call for this command, rooted in
// the given working directory (empty means inherit the caller's).
func (c Command) Invocation(directory string) Invocation {
	return Invocation{
		Program:   c.program,
		Args:      slices.Clone(c.args),
		Directory: directory,
	}
}
