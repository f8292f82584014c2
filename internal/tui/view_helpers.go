// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage frames body between dividers under title. Every screen ends with
// the quit hint.
func renderPage(title, body, hotKeys string) string {
	lines := []string{titleStyle.Render(title), "  " + uiDivider, ""}

	if strings.TrimSpace(body) == "" {
		lines = append(lines, "  -")
	} else {
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, "  "+line)
		}
	}

	lines = append(lines, "", "  "+uiDivider)
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, "  "+helpStyle.Render(hotKeys))
	}
	lines = append(lines, helpStyle.Render("  ctrl+c: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// fitText cuts v to max runes. Document names are free text and often not
// ASCII.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
