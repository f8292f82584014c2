// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/health-enclave/internal/adapter"
	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

type TerminalServices struct {
	DocumentsService TerminalDocumentsService
	AppInfoService   AppInfoService
}

func NewTerminalServices(storage store.DocumentStorage, sharedKey *crypto.SharedKeyHolder, cfg *config.TerminalConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TerminalServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	documents := NewTerminalDocumentsService(storage, sharedKey, cfg, logger)

	return &TerminalServices{
		DocumentsService: NewTerminalDocumentsValidationService(documents, cfg.Transfer.MaxDocumentSize),
		AppInfoService:   appInfo,
	}, nil
}

type DeviceServices struct {
	DocumentsService DeviceDocumentsService
}

func NewDeviceServices(repo store.DocumentRepository, deviceKey *crypto.DeviceKeyHolder, terminal adapter.TerminalAdapter, cfg *config.DeviceConfig, logger *logger.Logger) *DeviceServices {
	return &DeviceServices{
		DocumentsService: NewDeviceDocumentsService(repo, deviceKey, terminal, cfg, logger),
	}
}
