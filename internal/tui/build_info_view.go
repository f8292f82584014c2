// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/health-enclave/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := []struct{ label, value string }{
		{"Application", "HealthEnclave device"},
		{"Version", info.Version},
		{"Built", info.Date},
		{"Commit", info.Commit},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-12s %s", r.label+":", valueOrNA(r.value)))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
