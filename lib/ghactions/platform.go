// Copyright 2026 The Gantry Authors
// SPDX-License-Identifier: Apache-2.0

package ghactions

import "runtime"

// Platform identifies a GitHub-hosted runner image. The platform value
// doubles as the document's runs-on value and as the suffix that keeps
// job identities unique when one job name targets several platforms.
type Platform string

const (
	UbuntuLatest  Platform = "ubuntu-latest"
	MacOSLatest   Platform = "macos-latest"
	WindowsLatest Platform = "windows-latest"
)

// Platforms returns the supported runner platforms in the order the
// standard test matrix emits them.
func Platforms() []Platform {
	return []Platform{UbuntuLatest, MacOSLatest, WindowsLatest}
}

// IsCurrent reports whether this platform matches the operating system
// the calling process runs on. Evaluated per call so there is no cached
// host state; local replay uses it to skip jobs built for other
// platforms.
func (p Platform) IsCurrent() bool {
	return p.goos() == runtime.GOOS
}

// goos maps the runner image to the GOOS value of the operating system
// family it runs.
func (p Platform) goos() string {
	switch p {
	case UbuntuLatest:
		return "linux"
	case MacOSLatest:
		return "darwin"
	case WindowsLatest:
		return "windows"
	}
	return ""
}
