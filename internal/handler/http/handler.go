// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/models"
)

// SessionReporter describes the terminal session for operators.
type SessionReporter interface {
	Snapshot() models.SessionInfo
}

type Handler struct {
	services *service.TerminalServices
	sessions SessionReporter

	maxDocumentSize int64

	logger *logger.Logger
}

func NewHandler(services *service.TerminalServices, sessions SessionReporter, transferCfg config.Transfer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		sessions:        sessions,
		maxDocumentSize: transferCfg.MaxDocumentSize,
		logger:          logger,
	}
}
