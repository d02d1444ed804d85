// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown by
// the version command for diagnostics and release traceability.
type BuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewBuildInfo constructs [BuildInfo] from the provided build metadata.
// Empty values are reported as "N/A".
func NewBuildInfo(buildVersion, buildDate, buildCommit string) BuildInfo {
	return BuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (b BuildInfo) BuildVersion() string {
	return b.buildVersion
}

// BuildDate returns the build timestamp string.
func (b BuildInfo) BuildDate() string {
	return b.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (b BuildInfo) BuildCommit() string {
	return b.buildCommit
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.buildVersion, b.buildDate, b.buildCommit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
