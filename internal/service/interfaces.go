// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	// GetBuildInfo returns the version, build date and commit.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// TerminalDocumentsService coordinates the terminal's documents for the
// connected device. It owns the per-identity store, the catalog the device
// advertised and the four missing-item queues.
//
// Operator-facing methods (AddDocument, ListDocuments, RequestDocument,
// RetrieveDocument) fail with ErrNoSession while no device is connected.
// Device-facing methods are called by the gRPC handler after the caller's
// identity was authorized.
type TerminalDocumentsService interface {
	// SetSharedKey installs the base64 SharedKey for the rest of the run and
	// returns its fingerprint. Onefold keys sealed under a previous key stay
	// stored but are no longer usable.
	SetSharedKey(encoded string) (string, error)

	// SharedKeyFingerprint returns the fingerprint of the installed key, or
	// "" when none was entered yet.
	SharedKeyFingerprint() string

	// AddDocument encrypts body under a fresh document key, stores the unit
	// with a created onefold key and queues it for the device. Requires a
	// session and the SharedKey.
	AddDocument(ctx context.Context, name string, body []byte) (models.DocumentMetadata, error)

	// ListDocuments merges the locally stored documents with the ones the
	// device advertised during the current session.
	ListDocuments(ctx context.Context) ([]models.DocumentSummary, error)

	// RequestDocument never blocks. It returns a Ready retrieval with the
	// plaintext when a usable key and the body are stored, otherwise it asks
	// the device for what is missing and returns a Pending retrieval.
	// A denied request returns ErrNoPermission once.
	RequestDocument(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, error)

	// RetrieveDocument waits until the request resolves or ctx ends, in which
	// case it returns ErrRetrievalPending.
	RetrieveDocument(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, error)

	// Run consumes session lifecycle events until ctx ends or events is
	// closed. End events are forwarded to SessionEnded.
	Run(ctx context.Context, events <-chan session.Event) error

	// SessionStarted opens the store of identity and starts the advertisement
	// window. sessionID distinguishes consecutive sessions. The gRPC handler
	// calls it before acknowledging the admission.
	SessionStarted(ctx context.Context, sessionID uint64, identity models.DeviceIdentity)

	// SessionEnded resets in-flight requests and fails pending retrievals.
	// Events of a session that is no longer current are ignored.
	SessionEnded(sessionID uint64)

	// DocumentAdvertised records one catalog entry of the device.
	DocumentAdvertised(ctx context.Context, md models.DocumentMetadata) error

	// AdvertisementEnded closes the advertisement window early and queues
	// the documents the device lacks.
	AdvertisementEnded(ctx context.Context)

	// DocumentReceived stores a unit the device pushed.
	DocumentReceived(ctx context.Context, unit models.DocumentUnit) error

	// OnefoldKeyGranted stores a key the device granted and resolves the
	// waiting retrieval.
	OnefoldKeyGranted(ctx context.Context, key models.KeyWithIdentifier) error

	// OnefoldKeyDenied resolves the waiting retrieval with ErrNoPermission.
	OnefoldKeyDenied(ctx context.Context, id models.DocumentIdentifier) error

	// TwofoldKeyReceived replaces the terminal's record with the device's
	// twofold copy.
	TwofoldKeyReceived(ctx context.Context, key models.KeyWithIdentifier) error

	// DocumentDeleted removes a document the device deleted.
	DocumentDeleted(ctx context.Context, id models.DocumentIdentifier) error

	// WatchMissing hands every identifier queued under kind to fn until ctx
	// ends or fn fails. Handed identifiers stay in flight until fulfilled.
	WatchMissing(ctx context.Context, kind models.MissingKind, fn func(models.DocumentIdentifier) error) error

	// StreamDocument sends a stored unit as transfer frames.
	StreamDocument(ctx context.Context, id models.DocumentIdentifier, send func(models.DocumentFrame) error) error
}

// DeviceDocumentsService coordinates the device's documents with one terminal.
type DeviceDocumentsService interface {
	// Sync runs one session: it keeps the session alive, propagates
	// deletions, advertises the catalog and serves the terminal's missing
	// streams until the session ends or ctx is cancelled.
	Sync(ctx context.Context) error

	// Connected reports whether a session is up.
	Connected() bool

	// AccessRequests delivers the terminal's requests for onefold keys. Each
	// identifier is delivered once until granted or denied.
	AccessRequests() <-chan models.AccessRequest

	// PendingAccessRequests lists the identifiers awaiting an answer, most
	// recent first.
	PendingAccessRequests() []models.DocumentIdentifier

	// GrantAccess unwraps the twofold key and sends the onefold key to the
	// terminal.
	GrantAccess(ctx context.Context, id models.DocumentIdentifier) error

	// DenyAccess refuses the terminal's request.
	DenyAccess(ctx context.Context, id models.DocumentIdentifier) error

	// DeleteDocument tombstones the document and propagates the deletion when
	// connected. Unpropagated deletions are sent again on every session.
	DeleteDocument(ctx context.Context, id models.DocumentIdentifier) error

	// ListDocuments lists the live documents held on the device.
	ListDocuments(ctx context.Context) ([]models.DocumentMetadata, error)
}

// DeviceKeychainService manages the device's own identity and DeviceKey.
type DeviceKeychainService interface {
	// Init generates an identity and a 24-word mnemonic, derives the
	// DeviceKey from it and stores both protected by passphrase. It fails
	// with ErrAlreadyInitialized unless force is set.
	Init(passphrase string, force bool) (string, models.DeviceIdentity, error)

	// Restore derives the DeviceKey from mnemonic and stores it protected by
	// passphrase.
	Restore(mnemonic, passphrase string) (models.DeviceIdentity, error)

	// Unlock recovers the identity and the DeviceKey.
	Unlock(passphrase string) (models.DeviceIdentity, *crypto.DeviceKeyHolder, error)
}
