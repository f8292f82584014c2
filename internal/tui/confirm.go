// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.message + "\" from the device and the terminal?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
