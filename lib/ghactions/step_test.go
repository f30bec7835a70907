// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockRunner records every invocation and can be told to fail at a
// given call index.
type mockRunner struct {
	invocations []Invocation
	failAt      int // 1-based call number to fail on; 0 means never
	err         error
}

func (m *mockRunner) Run(_ context.Context, inv Invocation) error {
	m.invocations = append(m.invocations, inv)
	if m.failAt != 0 && len(m.invocations) == m.failAt {
		return m.err
	}
	return nil
}

func renderStep(step Step) string {
	var b strings.Builder
	step.render(&b)
	return b.String()
}

func TestStepRender(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want string
	}{
		{
			name: "empty renders nothing",
			step: Step{},
			want: "",
		},
		{
			name: "action without parameters",
			step: NewAction("actions/checkout@v3").Step(),
			want: "    - uses: actions/checkout@v3\n",
		},
		{
			name: "action with parameters in insertion order",
			step: NewAction("actions/upload-artifact@v3").
				With("name", "packages").
				With("path", "target/packages").
				Step(),
			want: "    - uses: actions/upload-artifact@v3\n" +
				"      with:\n" +
				"        name: packages\n" +
				"        path: target/packages\n",
		},
		{
			name: "single command run",
			step: Cmd("cargo", "test").Step(),
			want: "    - run: cargo test\n",
		},
		{
			name: "single command run in directory",
			step: Cmd("cargo", "test").InDirectory("packages/app").Step(),
			want: "    - working-directory: packages/app\n" +
				"      run: cargo test\n",
		},
		{
			name: "script renders as block",
			step: Script(
				[]string{"cargo", "build"},
				[]string{"cargo", "test"},
			).Step(),
			want: "    - run: |\n" +
				"        cargo build\n" +
				"        cargo test\n",
		},
		{
			name: "single line script still renders as block",
			step: Script([]string{"cargo", "doc"}).Step(),
			want: "    - run: |\n" +
				"        cargo doc\n",
		},
		{
			name: "script in directory",
			step: Script([]string{"cargo", "build"}).InDirectory("packages/app").Step(),
			want: "    - working-directory: packages/app\n" +
				"      run: |\n" +
				"        cargo build\n",
		},
		{
			name: "multi flattens children in order",
			step: MultiStep(
				Cmd("cargo", "build").Step(),
				NewAction("Swatinem/rust-cache@v2").Step(),
			),
			want: "    - run: cargo build\n" +
				"    - uses: Swatinem/rust-cache@v2\n",
		},
		{
			name: "when true keeps the step",
			step: When(true, Cmd("cargo", "test").Step()),
			want: "    - run: cargo test\n",
		},
		{
			name: "when false renders nothing",
			step: When(false, Cmd("cargo", "test").Step()),
			want: "",
		},
		{
			name: "install renders as a run line",
			step: Install("cargo-udeps", "0.1.43"),
			want: "    - run: cargo install cargo-udeps --locked --version 0.1.43\n",
		},
		{
			name: "upload artifact",
			step: UploadArtifact("book", "target/book"),
			want: "    - uses: actions/upload-artifact@v3\n" +
				"      with:\n" +
				"        name: book\n" +
				"        path: target/book\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := renderStep(test.step); got != test.want {
				t.Errorf("render:\n%q\nwant:\n%q", got, test.want)
			}
		})
	}
}

func TestStepExecuteOnlyRuns(t *testing.T) {
	step := MultiStep(
		Checkout(),
		Cmd("cargo", "build").Step(),
		Step{},
		MultiStep(
			Cmd("cargo", "test").Step(),
			NewAction("Swatinem/rust-cache@v2").Step(),
		),
		Install("cargo-udeps", "0.1.43"),
	)

	runner := &mockRunner{}
	if err := step.Execute(context.Background(), runner); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := []string{
		"cargo build",
		"cargo test",
		"cargo install cargo-udeps --locked --version 0.1.43",
	}
	if len(runner.invocations) != len(want) {
		t.Fatalf("got %d invocations, want %d: %v", len(runner.invocations), len(want), runner.invocations)
	}
	for i, inv := range runner.invocations {
		if inv.String() != want[i] {
			t.Errorf("invocation %d = %q, want %q", i, inv.String(), want[i])
		}
	}
}

func TestStepExecuteStopsAtFirstFailure(t *testing.T) {
	step := MultiStep(
		Cmd("cargo", "fmt").Step(),
		Cmd("cargo", "test").Step(),
		Cmd("cargo", "doc").Step(),
	)

	failure := errors.New("exit code 1")
	runner := &mockRunner{failAt: 2, err: failure}

	err := step.Execute(context.Background(), runner)
	if !errors.Is(err, failure) {
		t.Fatalf("Execute error = %v, want %v", err, failure)
	}
	if len(runner.invocations) != 2 {
		t.Errorf("got %d invocations, want 2 (no invocation after the failure)", len(runner.invocations))
	}
}

func TestScriptExecutesEachLine(t *testing.T) {
	step := Script(
		[]string{"cargo", "build"},
		[]string{"cargo", "test"},
	).InDirectory("packages/app").Step()

	runner := &mockRunner{}
	if err := step.Execute(context.Background(), runner); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(runner.invocations) != 2 {
		t.Fatalf("got %d invocations, want 2", len(runner.invocations))
	}
	for i, inv := range runner.invocations {
		if inv.Directory != "packages/app" {
			t.Errorf("invocation %d directory = %q, want %q", i, inv.Directory, "packages/app")
		}
	}
}
