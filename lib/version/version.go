// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the gantry
// binary, read from the VCS metadata the Go toolchain stamps into
// module builds.
package version

import (
	"fmt"
	"runtime"

	"github.com/carlmjohnson/versioninfo"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	dirty := ""
	if versioninfo.DirtyBuild {
		dirty = "-dirty"
	}
	commit := versioninfo.Revision
	if len(commit) > 7 {
		commit = commit[:7]
	}
	when := "unknown"
	if !versioninfo.LastCommit.IsZero() {
		when = versioninfo.LastCommit.UTC().Format("2006-01-02T15:04:05Z")
	}
	return fmt.Sprintf("%s (%s%s, %s)", versioninfo.Version, commit, dirty, when)
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns a compact version string for embedding in user-agent
// style identifiers.
func Short() string {
	return versioninfo.Short()
}
