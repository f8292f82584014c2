// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/health-enclave/models"
)

const nameWidth = 40

type listModel struct {
	items     []models.DocumentMetadata
	idx       int
	loading   bool
	connected bool
	spinner   spinner.Model
	status    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.DocumentMetadata, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.DocumentMetadata{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items []models.DocumentMetadata) {
	m.loading = false
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("HealthEnclave") + "  "
	if m.connected {
		header += onlineStyle.Render("● terminal connected")
	} else {
		header += offlineStyle.Render(m.spinner.View() + " waiting for terminal")
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.items) == 0:
		out += "No documents\n"
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-*s  %s  %s\n",
				cursor,
				nameWidth, fitText(item.Name, nameWidth),
				item.CreatedAt.Local().Format("2006-01-02 15:04"),
				item.CreatedBy,
			)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render(strings.TrimSpace("d delete  c copy id  r refresh  v about  q quit"))
	return out
}
