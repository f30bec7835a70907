// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"path/filepath"
	"strings"

	"github.com/gantry-build/gantry/lib/fileutil"
)

// Event names a workflow trigger.
type Event string

const (
	Push        Event = "push"
	PullRequest Event = "pull_request"
)

// Workflow is the top-level document: a name, the trigger events, and
// the jobs in the order they appear on the page. Built once by the
// pipeline fold, then only read.
type Workflow struct {
	Name string
	On   []Event
	Jobs []Job
}

// Job is one named, platform-bound group of steps as it appears in the
// rendered document.
type Job struct {
	Name   string
	RunsOn Platform
	Steps  []Step
}

// NewWorkflow starts a workflow document with the given name.
func NewWorkflow(name string) *Workflow {
	return &Workflow{Name: name}
}

// OnEvents appends trigger events.
func (w *Workflow) OnEvents(events ...Event) *Workflow {
	w.On = append(w.On, events...)
	return w
}

// AddJob appends a job. Identity uniqueness is by construction: the
// rendered job key is name-platform, so the same name may target
// several platforms. Two jobs with the same name and platform are
// undefined input and render duplicate keys.
func (w *Workflow) AddJob(name string, runsOn Platform, steps []Step) {
	w.Jobs = append(w.Jobs, Job{Name: name, RunsOn: runsOn, Steps: steps})
}

// Identity returns the job's document key, the name suffixed with the
// platform it runs on.
func (j *Job) Identity() string {
	return j.Name + "-" + string(j.RunsOn)
}

// Document renders the workflow. The output is deterministic down to
// the byte: the same value always renders the same text, which is what
// lets check mode diff against the committed copy.
func (w *Workflow) Document() string {
	var b strings.Builder

	b.WriteString("name: ")
	b.WriteString(w.Name)
	b.WriteString("\non: [")
	for i, event := range w.On {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(event))
	}
	b.WriteString("]\njobs:\n")

	for i := range w.Jobs {
		w.Jobs[i].render(&b)
	}

	return b.String()
}

func (j *Job) render(b *strings.Builder) {
	b.WriteString("  ")
	b.WriteString(j.Identity())
	b.WriteString(":\n    runs-on: ")
	b.WriteString(string(j.RunsOn))
	b.WriteString("\n    steps:\n")

	for _, step := range j.Steps {
		step.render(b)
	}
}

// Path returns the repository-relative location of the rendered
// document.
func (w *Workflow) Path() string {
	return filepath.Join(".github", "workflows", w.Name+".yml")
}

// Write renders the document and persists it at Path relative to the
// current directory. In check mode nothing is written; the error
// reports whether the committed copy is stale.
func (w *Workflow) Write(check bool) error {
	return fileutil.Update(w.Path(), w.Document(), check)
}
