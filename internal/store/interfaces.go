// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/health-enclave/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository is the per-identity document catalog. Every multi-row
// mutation is atomic: readers never observe a partially written unit.
type DocumentRepository interface {
	// Put stores a complete unit. It fails with ErrDocumentExists when the
	// identifier is already stored and ErrDocumentDeleted when it was
	// tombstoned.
	Put(ctx context.Context, unit models.DocumentUnit) error

	// Get returns the complete unit. ErrMissingMetadata when unknown,
	// ErrMissingKey when the key record is absent.
	Get(ctx context.Context, id models.DocumentIdentifier) (models.DocumentUnit, error)

	// Metadata returns only the metadata record.
	Metadata(ctx context.Context, id models.DocumentIdentifier) (models.DocumentMetadata, error)

	// Has reports whether a live unit is stored under id.
	Has(ctx context.Context, id models.DocumentIdentifier) (bool, error)

	// ReadChunks streams the stored ciphertext chunks in order.
	ReadChunks(ctx context.Context, id models.DocumentIdentifier, fn func(chunk []byte) error) error

	// PutKey replaces the live custody record of a stored document.
	PutKey(ctx context.Context, id models.DocumentIdentifier, key models.StoredKey) error

	// GetKey returns the live custody record.
	GetKey(ctx context.Context, id models.DocumentIdentifier) (models.StoredKey, error)

	// Delete removes the unit entirely.
	Delete(ctx context.Context, id models.DocumentIdentifier) error

	// ListMetadata lists live documents ordered by creation time.
	ListMetadata(ctx context.Context) ([]models.DocumentMetadata, error)

	// Tombstone drops body and key but keeps a deleted marker so that the
	// deletion can be propagated and the document is never pulled again.
	Tombstone(ctx context.Context, id models.DocumentIdentifier) error

	// IsTombstoned reports whether id carries a deleted marker.
	IsTombstoned(ctx context.Context, id models.DocumentIdentifier) (bool, error)

	// ListTombstones lists identifiers carrying a deleted marker.
	ListTombstones(ctx context.Context) ([]models.DocumentIdentifier, error)
}

// DocumentStorage hands out repositories scoped to a device identity.
type DocumentStorage interface {
	Documents(identity models.DeviceIdentity) DocumentRepository
}

// SecretStorage persists the device's own identity and key.
type SecretStorage interface {
	Identity() (models.DeviceIdentity, error)
	StoreIdentity(identity models.DeviceIdentity) error
	DeviceKey() ([]byte, error)
	StoreDeviceKey(key []byte) error
	Close() error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
