// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gantry-build/gantry/lib/ci"
)

func TestCIWritesWorkflowDocument(t *testing.T) {
	chdir(t, t.TempDir())

	if err := ciCommand().Execute(context.Background(), nil, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(".github", "workflows", "ci-tests.yml"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := ci.StandardWorkflow().Workflow().Document()
	if string(data) != want {
		t.Errorf("written document does not match the standard pipeline render:\n%s", string(data))
	}
}

func TestCICheckPassesWhenCurrent(t *testing.T) {
	chdir(t, t.TempDir())

	if err := ciCommand().Execute(context.Background(), nil, testLogger()); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ciCommand().Execute(context.Background(), []string{"--check"}, testLogger()); err != nil {
		t.Errorf("check after write: %v", err)
	}
}

func TestCICheckStaleExitsNonZero(t *testing.T) {
	chdir(t, t.TempDir())

	err := ciCommand().Execute(context.Background(), []string{"--check"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want failure for missing document")
	}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok {
		t.Fatalf("error %v does not carry an exit code", err)
	}
	if coder.ExitCode() != 1 {
		t.Errorf("ExitCode() = %d, want 1", coder.ExitCode())
	}
}

func TestCICheckReportsTamperedDocument(t *testing.T) {
	chdir(t, t.TempDir())

	if err := ciCommand().Execute(context.Background(), nil, testLogger()); err != nil {
		t.Fatalf("write: %v", err)
	}

	path := filepath.Join(".github", "workflows", "ci-tests.yml")
	if err := os.WriteFile(path, []byte("name: ci-tests\non: [push]\njobs:\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := ciCommand().Execute(context.Background(), []string{"--check"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want failure for tampered document")
	}
}

func TestCIUsesPinsFile(t *testing.T) {
	chdir(t, t.TempDir())

	err := os.WriteFile("gantry.jsonc", []byte(`{
  // Toolchain pins for this repository.
  "rust": "1.99",
}`), 0o644)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := ciCommand().Execute(context.Background(), nil, testLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(".github", "workflows", "ci-tests.yml"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	document := string(data)
	if !strings.Contains(document, "toolchain: 1.99") {
		t.Errorf("document does not use the pinned stable toolchain:\n%s", document)
	}
	// Fields absent from the pins file keep their defaults.
	if !strings.Contains(document, "toolchain: nightly-2023-10-14") {
		t.Errorf("document lost the default nightly pin:\n%s", document)
	}
}

func TestCIRejectsPositionalArgument(t *testing.T) {
	err := ciCommand().Execute(context.Background(), []string{"extra"}, testLogger())
	if err == nil {
		t.Fatal("Execute() = nil, want error for unexpected argument")
	}
	if !strings.Contains(err.Error(), "unexpected argument") {
		t.Errorf("error = %q, want 'unexpected argument'", err.Error())
	}
}
