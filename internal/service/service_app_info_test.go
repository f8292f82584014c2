// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.AppBuildInfo{Date: "2026-01-01"}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsConfiguredInfo(t *testing.T) {
	want := models.AppBuildInfo{Version: "3.1.4", Date: "2026-03-01", Commit: "abc123"}
	svc, err := NewAppInfoService(want, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, want, svc.GetBuildInfo(context.Background()))
}

func TestGetBuildInfo_DifferentInstances_Independent(t *testing.T) {
	svc1, err := NewAppInfoService(models.AppBuildInfo{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(models.AppBuildInfo{Version: "2.0.0"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetBuildInfo(context.Background()).Version)
	assert.Equal(t, "2.0.0", svc2.GetBuildInfo(context.Background()).Version)
}
