// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UnknownBuildValue is shown for build metadata that was not set via ldflags.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the version, date and commit linked into the server and
// callbackctl binaries. It is served by the version probe.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// OrUnknown returns a copy with every empty field set to [UnknownBuildValue].
func (a AppBuildInfo) OrUnknown() AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(a.version),
		date:    orUnknown(a.date),
		commit:  orUnknown(a.commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string    { return a.date }
func (a AppBuildInfo) BuildCommit() string  { return a.commit }

func orUnknown(s string) string {
	if s == "" {
		return UnknownBuildValue
	}
	return s
}
