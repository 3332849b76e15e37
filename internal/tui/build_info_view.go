// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-massage-link/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: massage-link\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
