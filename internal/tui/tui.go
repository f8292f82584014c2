// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the holder's console on the device.
//
// It lists the documents the device holds, prompts the holder for consent
// whenever the terminal asks for a onefold key and lets the holder delete
// documents everywhere.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	documents service.DeviceDocumentsService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(documents service.DeviceDocumentsService, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{documents: documents, buildInfo: buildInfo, logger: logger}
}

// Run shows the console until the holder quits or ctx ends. Quitting returns
// ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.documents, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quit {
		t.logger.Info().Msg("console closed by holder")
		return ErrUserQuit
	}
	return nil
}
