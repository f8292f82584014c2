// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/health-enclave/models"
)

// requestModel holds the terminal's access requests awaiting the holder.
// The oldest one is shown first.
type requestModel struct {
	pending   []models.AccessRequest
	answering bool
}

func (m *requestModel) push(req models.AccessRequest) {
	for _, p := range m.pending {
		if p.Metadata.ID == req.Metadata.ID {
			return
		}
	}
	m.pending = append(m.pending, req)
}

func (m requestModel) head() (models.AccessRequest, bool) {
	if len(m.pending) == 0 {
		return models.AccessRequest{}, false
	}
	return m.pending[0], true
}

func (m *requestModel) remove(id models.DocumentIdentifier) {
	for i, p := range m.pending {
		if p.Metadata.ID == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (m *requestModel) reset() {
	m.pending = nil
	m.answering = false
}

func (m requestModel) View() string {
	req, ok := m.head()
	if !ok {
		return ""
	}

	content := "The terminal asks to open\n\n"
	content += fmt.Sprintf("  %s\n  by %s, %s\n\n",
		req.Metadata.Name,
		req.Metadata.CreatedBy,
		req.Metadata.CreatedAt.Local().Format("2006-01-02 15:04"),
	)
	if more := len(m.pending) - 1; more > 0 {
		content += fmt.Sprintf("%d more waiting\n\n", more)
	}
	if m.answering {
		content += "Sending answer..."
	} else {
		content += "y grant    n deny"
	}
	return promptBoxStyle.Render(content)
}
