// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the device's background loops.
//
// A Worker blocks until its context ends. Workers runs several of them and
// stops all of them when one fails.
package workers

import (
	"context"

	"github.com/MKhiriev/health-enclave/models"
)

// Worker is a long-running background loop.
type Worker interface {
	// Run blocks until ctx is cancelled or the worker cannot continue.
	Run(ctx context.Context) error
}

// Syncer runs one device session against the terminal.
type Syncer interface {
	Sync(ctx context.Context) error
}

// AccessResponder answers the terminal's access requests.
type AccessResponder interface {
	AccessRequests() <-chan models.AccessRequest
	DenyAccess(ctx context.Context, id models.DocumentIdentifier) error
}
