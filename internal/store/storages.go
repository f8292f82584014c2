// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/models"
)

// DefaultChunkSize is the size of the ciphertext pieces a body is stored in.
const DefaultChunkSize = transfer.DefaultChunkSize

// Storages owns the database connection and hands out identity-scoped
// document repositories.
type Storages struct {
	db        *DB
	chunkSize int
}

// NewStorages connects to dsn, applies the schema and returns the storage
// root. chunkSize <= 0 selects [DefaultChunkSize].
func NewStorages(ctx context.Context, dsn string, chunkSize int, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStorages(db, chunkSize), nil
}

func newStorages(db *DB, chunkSize int) *Storages {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Storages{db: db, chunkSize: chunkSize}
}

// Documents implements [DocumentStorage].
func (s *Storages) Documents(identity models.DeviceIdentity) DocumentRepository {
	return NewDocumentRepository(s.db, identity, s.chunkSize)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
