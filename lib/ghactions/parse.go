// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DocumentSummary is the shallow parsed form of a rendered workflow:
// the name, the trigger events, and the jobs in document order. It
// backs the check-mode drift report and round-trip tests; step
// internals are counted, not modeled.
type DocumentSummary struct {
	Name string
	On   []string
	Jobs []JobSummary
}

// JobSummary describes one job as it appears in the document.
type JobSummary struct {
	Identity string
	RunsOn   string
	Steps    int
}

// ParseDocument parses rendered workflow text into a summary. Jobs
// keep their document order, which a plain map unmarshal would lose.
func ParseDocument(text string) (*DocumentSummary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parsing workflow document: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("workflow document is not a mapping")
	}

	summary := &DocumentSummary{}
	root := doc.Content[0]

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "name":
			summary.Name = value.Value
		case "on":
			for _, event := range value.Content {
				summary.On = append(summary.On, event.Value)
			}
		case "jobs":
			jobs, err := parseJobs(value)
			if err != nil {
				return nil, err
			}
			summary.Jobs = jobs
		}
	}

	if summary.Name == "" {
		return nil, fmt.Errorf("workflow document has no name")
	}
	return summary, nil
}

func parseJobs(node *yaml.Node) ([]JobSummary, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("jobs is not a mapping")
	}

	var jobs []JobSummary
	for i := 0; i+1 < len(node.Content); i += 2 {
		identity, body := node.Content[i], node.Content[i+1]
		job := JobSummary{Identity: identity.Value}

		for j := 0; j+1 < len(body.Content); j += 2 {
			key, value := body.Content[j], body.Content[j+1]
			switch key.Value {
			case "runs-on":
				job.RunsOn = value.Value
			case "steps":
				job.Steps = len(value.Content)
			}
		}

		if job.RunsOn == "" {
			return nil, fmt.Errorf("job %q has no runs-on", job.Identity)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Identities returns the job identities in document order.
func (s *DocumentSummary) Identities() []string {
	identities := make([]string, len(s.Jobs))
	for i, job := range s.Jobs {
		identities[i] = job.Identity
	}
	return identities
}
