// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrEmptyPassphrase = errors.New("passphrase must not be empty")

type passphraseModel struct {
	title     string
	input     textinput.Model
	message   string
	submitted bool
	cancelled bool
}

func newPassphraseModel(title string) passphraseModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	return passphraseModel{title: title, input: input}
}

func (m passphraseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passphraseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c", key.Matches(keyMsg, keys.esc):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.input.Value() == "" {
				m.message = ErrEmptyPassphrase.Error()
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passphraseModel) View() string {
	data := m.input.View()
	if m.message != "" {
		data += "\n\n" + m.message
	}
	return appStyle.Render(renderPage(m.title, data, "enter: confirm  esc: cancel"))
}

// PromptPassphrase asks for a passphrase without echoing it. Cancelling
// returns ErrUserQuit.
func PromptPassphrase(title string) (string, error) {
	finalModel, err := tea.NewProgram(newPassphraseModel(title)).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(passphraseModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled || !result.submitted {
		return "", ErrUserQuit
	}
	return result.input.Value(), nil
}
