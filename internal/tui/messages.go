// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/health-enclave/models"
)

type listLoadedMsg struct {
	items []models.DocumentMetadata
	err   error
}

type accessRequestMsg struct {
	request models.AccessRequest
}

type answeredMsg struct {
	metadata models.DocumentMetadata
	granted  bool
	err      error
}

type itemDeletedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type tickMsg time.Time
