// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer clients of the HealthEnclave
// binaries.
//
// [TerminalAdapter] is the device's view of the terminal's gRPC service; it
// decouples the device coordinator from the wire. [OperatorAdapter] is the
// operator CLI's client for the terminal's HTTP API.
//
// Transport errors are mapped back to the sentinel values of the session,
// store and crypto packages (errors_mapper.go) so that callers can use
// [errors.Is] regardless of the transport.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/health-enclave/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TerminalAdapter is the device side of the HealthEnclave service. Every call
// carries the device identity.
type TerminalAdapter interface {
	// KeepAlive opens the heartbeat stream, calls onAdmitted once the terminal
	// acknowledged the session, then sends a heartbeat every interval until
	// ctx ends or the stream fails. A rejected admission returns
	// session.ErrAlreadyConnected.
	KeepAlive(ctx context.Context, interval time.Duration, onAdmitted func()) error

	// Advertise streams the device's live metadata catalog. The terminal
	// treats the end of the stream as the end of the advertisement.
	Advertise(ctx context.Context, catalog []models.DocumentMetadata) error

	// WatchMissing subscribes to one of the terminal's missing-item streams
	// and calls fn for every identifier until ctx ends or fn fails.
	WatchMissing(ctx context.Context, kind models.MissingKind, fn func(models.DocumentIdentifier) error) error

	// PullDocument downloads a complete unit from the terminal. The returned
	// key carries no origin.
	PullDocument(ctx context.Context, id models.DocumentIdentifier) (models.DocumentUnit, error)

	// PushDocument uploads a complete unit to the terminal. A unit the
	// terminal already holds returns store.ErrDocumentExists.
	PushDocument(ctx context.Context, unit models.DocumentUnit) error

	// TransferOnefoldKey grants the terminal access to a document.
	TransferOnefoldKey(ctx context.Context, key models.KeyWithIdentifier) error

	// TransferTwofoldKey hands the terminal the twofold copy of a key.
	TransferTwofoldKey(ctx context.Context, key models.KeyWithIdentifier) error

	// DenyOnefoldKey refuses a pending access request.
	DenyOnefoldKey(ctx context.Context, id models.DocumentIdentifier) error

	// DeleteDocument propagates a deletion.
	DeleteDocument(ctx context.Context, id models.DocumentIdentifier) error

	// Close releases the connection.
	Close() error
}

// OperatorAdapter talks to the terminal's operator HTTP API.
type OperatorAdapter interface {
	// SetSharedKey transcribes the SharedKey and returns its fingerprint.
	SetSharedKey(ctx context.Context, encoded string) (string, error)

	// Session describes the terminal's current session.
	Session(ctx context.Context) (models.SessionInfo, error)

	// ListDocuments lists every document the terminal knows about.
	ListDocuments(ctx context.Context) ([]models.DocumentSummary, error)

	// AddDocument uploads a new document for the connected device.
	AddDocument(ctx context.Context, name string, body []byte) (models.DocumentMetadata, error)

	// GetDocument asks for a document, letting the terminal wait up to wait
	// for it. A Pending retrieval is not an error.
	GetDocument(ctx context.Context, id models.DocumentIdentifier, wait time.Duration) (models.Retrieval, error)

	// BuildInfo reports the terminal's version.
	BuildInfo(ctx context.Context) (models.AppBuildInfo, error)
}
