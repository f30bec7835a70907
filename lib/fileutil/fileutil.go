// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

// Package fileutil persists generated files idempotently. Update is
// the single entry point: it writes a file only when the content
// actually changed, and in check mode it writes nothing and reports
// staleness instead, which is what CI uses to enforce that generated
// files are committed.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCheckFailed is wrapped by Update in check mode when the file on
// disk is missing or differs from the generated content. Callers use
// errors.Is to distinguish staleness from I/O failure.
var ErrCheckFailed = errors.New("generated content is stale")

// Update writes content to path, creating parent directories as
// needed. When the file already holds exactly that content, nothing is
// touched, so timestamps survive repeated generation.
//
// In check mode no file is ever written: Update returns an error
// wrapping ErrCheckFailed when path is missing or differs, and nil
// when it matches.
func Update(path, content string, check bool) error {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if string(existing) == content {
			return nil
		}
		if check {
			return fmt.Errorf("%s: %w", path, ErrCheckFailed)
		}
	case os.IsNotExist(err):
		if check {
			return fmt.Errorf("%s does not exist: %w", path, ErrCheckFailed)
		}
	default:
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
