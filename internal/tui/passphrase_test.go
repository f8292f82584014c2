// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updatePassphrase(t *testing.T, m passphraseModel, msg tea.Msg) (passphraseModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	result, ok := next.(passphraseModel)
	require.True(t, ok)
	return result, cmd
}

func TestPassphraseModel_Submit(t *testing.T) {
	m := newPassphraseModel("Unlock device")

	m, _ = updatePassphrase(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s3cret")})
	assert.NotContains(t, m.View(), "s3cret")

	m, cmd := updatePassphrase(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.submitted)
	assert.Equal(t, "s3cret", m.input.Value())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPassphraseModel_EmptyRejected(t *testing.T) {
	m := newPassphraseModel("Unlock device")

	m, cmd := updatePassphrase(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.submitted)
	assert.Contains(t, m.View(), ErrEmptyPassphrase.Error())
}

func TestPassphraseModel_Cancel(t *testing.T) {
	m := newPassphraseModel("Unlock device")

	m, cmd := updatePassphrase(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.cancelled)
	require.NotNil(t, cmd)
}
