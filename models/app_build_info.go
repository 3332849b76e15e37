// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries build-time metadata injected through linker flags and
// shown in the client's version window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are replaced with
// "N/A" so callers never have to special-case them.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNA(a.buildVersion) }

func (a AppBuildInfo) BuildDate() string { return orNA(a.buildDate) }

func (a AppBuildInfo) BuildCommit() string { return orNA(a.buildCommit) }

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return strings.TrimSpace(v)
}
