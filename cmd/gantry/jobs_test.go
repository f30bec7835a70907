// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJobsTable(t *testing.T) {
	chdir(t, t.TempDir())

	output := captureStdout(t, func() {
		if err := jobsCommand().Execute(context.Background(), nil, testLogger()); err != nil {
			t.Errorf("Execute() error: %v", err)
		}
	})

	for _, want := range []string{
		"JOB", "RUNS-ON", "STEPS",
		"tests-ubuntu-latest",
		"tests-macos-latest",
		"tests-windows-latest",
		"release-tests-ubuntu-latest",
		"release-tests-macos-latest",
		"release-tests-windows-latest",
		"lints-ubuntu-latest",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("listing missing %q:\n%s", want, output)
		}
	}
}

func TestJobsJSON(t *testing.T) {
	chdir(t, t.TempDir())

	output := captureStdout(t, func() {
		if err := jobsCommand().Execute(context.Background(), []string{"--json"}, testLogger()); err != nil {
			t.Errorf("Execute() error: %v", err)
		}
	})

	var entries []struct {
		Job    string `json:"job"`
		RunsOn string `json:"runs_on"`
		Steps  int    `json:"steps"`
	}
	if err := json.Unmarshal([]byte(output), &entries); err != nil {
		t.Fatalf("Unmarshal: %v\noutput:\n%s", err, output)
	}

	if len(entries) != 7 {
		t.Fatalf("len(entries) = %d, want 7", len(entries))
	}
	first := entries[0]
	if first.Job != "tests-ubuntu-latest" || first.RunsOn != "ubuntu-latest" {
		t.Errorf("first entry = %+v, want the ubuntu tests job", first)
	}
	// Three preamble steps plus the five verification commands.
	if first.Steps != 8 {
		t.Errorf("tests job steps = %d, want 8", first.Steps)
	}
	last := entries[len(entries)-1]
	if last.Job != "lints-ubuntu-latest" {
		t.Errorf("last entry = %+v, want the lint job", last)
	}
	if last.Steps != 6 {
		t.Errorf("lint job steps = %d, want 6", last.Steps)
	}
}
