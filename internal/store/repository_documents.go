// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/models"
)

// documentRepository is the SQL-backed [DocumentRepository] scoped to one
// owner. Document bodies are stored as ordered ciphertext chunks so that a
// body can be streamed without loading it whole.
type documentRepository struct {
	*DB
	owner     string
	chunkSize int
}

// NewDocumentRepository constructs a repository for the given device identity.
func NewDocumentRepository(db *DB, identity models.DeviceIdentity, chunkSize int) DocumentRepository {
	return &documentRepository{
		DB:        db,
		owner:     identity.Owner(),
		chunkSize: chunkSize,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

type documentRow struct {
	metadata models.DocumentMetadata
	deleted  bool
}

func scanDocumentRow(row rowScanner) (documentRow, error) {
	var (
		r         documentRow
		id        string
		createdAt int64
	)
	if err := row.Scan(&id, &r.metadata.Name, &createdAt, &r.metadata.CreatedBy, &r.deleted); err != nil {
		return documentRow{}, err
	}
	r.metadata.ID = models.DocumentIdentifier(id)
	r.metadata.CreatedAt = time.UnixMilli(createdAt).UTC()
	return r, nil
}

// lookup returns the document row including tombstones. found is false when
// no row exists.
func (r *documentRepository) lookup(ctx context.Context, q querier, id models.DocumentIdentifier) (row documentRow, found bool, err error) {
	query, args, err := buildSelectDocumentQuery(r.builder, r.owner, id)
	if err != nil {
		return documentRow{}, false, err
	}

	row, err = scanDocumentRow(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return documentRow{}, false, nil
	}
	if err != nil {
		return documentRow{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return row, true, nil
}

// Put stores metadata, chunks and key in one transaction.
func (r *documentRepository) Put(ctx context.Context, unit models.DocumentUnit) error {
	log := logger.FromContext(ctx)

	if err := unit.Metadata.Validate(); err != nil {
		return err
	}
	if err := unit.Key.Key.Validate(); err != nil {
		return err
	}

	id := unit.Metadata.ID
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		existing, found, err := r.lookup(ctx, tx, id)
		if err != nil {
			return err
		}
		if found && existing.deleted {
			return ErrDocumentDeleted
		}
		if found {
			return ErrDocumentExists
		}

		query, args, err := buildInsertDocumentQuery(r.builder, r.owner, unit.Metadata)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return ErrDocumentExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for seq, chunk := range transfer.Split(unit.Body, r.chunkSize) {
			query, args, err = buildInsertChunkQuery(r.builder, r.owner, id, seq, chunk)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		return r.upsertKey(ctx, tx, id, unit.Key)
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Put").
			Str("document_id", id.String()).
			Int("body_size", len(unit.Body)).
			Msg("failed to store document")
		return err
	}

	return nil
}

// Get returns the live unit with its body reassembled.
func (r *documentRepository) Get(ctx context.Context, id models.DocumentIdentifier) (models.DocumentUnit, error) {
	log := logger.FromContext(ctx)

	md, err := r.Metadata(ctx, id)
	if err != nil {
		return models.DocumentUnit{}, err
	}

	key, err := r.GetKey(ctx, id)
	if err != nil {
		return models.DocumentUnit{}, err
	}

	var body bytes.Buffer
	if err = r.readChunks(ctx, id, func(chunk []byte) error {
		body.Write(chunk)
		return nil
	}); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Get").
			Str("document_id", id.String()).
			Msg("failed to read document body")
		return models.DocumentUnit{}, err
	}

	return models.DocumentUnit{Metadata: md, Key: key, Body: body.Bytes()}, nil
}

// Metadata returns the metadata of a live document.
func (r *documentRepository) Metadata(ctx context.Context, id models.DocumentIdentifier) (models.DocumentMetadata, error) {
	row, found, err := r.lookup(ctx, r.DB, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.Metadata").
			Str("document_id", id.String()).
			Msg("failed to look up document")
		return models.DocumentMetadata{}, err
	}
	if !found || row.deleted {
		return models.DocumentMetadata{}, ErrMissingMetadata
	}
	return row.metadata, nil
}

// Has reports whether a live document is stored under id.
func (r *documentRepository) Has(ctx context.Context, id models.DocumentIdentifier) (bool, error) {
	_, err := r.Metadata(ctx, id)
	switch {
	case errors.Is(err, ErrMissingMetadata):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// ReadChunks calls fn for each stored chunk in order.
func (r *documentRepository) ReadChunks(ctx context.Context, id models.DocumentIdentifier, fn func(chunk []byte) error) error {
	if _, err := r.Metadata(ctx, id); err != nil {
		return err
	}
	return r.readChunks(ctx, id, fn)
}

func (r *documentRepository) readChunks(ctx context.Context, id models.DocumentIdentifier, fn func(chunk []byte) error) error {
	query, args, err := buildSelectChunksQuery(r.builder, r.owner, id)
	if err != nil {
		return err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var chunk []byte
		if err = rows.Scan(&chunk); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = fn(chunk); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}

// PutKey replaces the key record of a live document.
func (r *documentRepository) PutKey(ctx context.Context, id models.DocumentIdentifier, key models.StoredKey) error {
	log := logger.FromContext(ctx)

	if err := key.Key.Validate(); err != nil {
		return err
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		row, found, err := r.lookup(ctx, tx, id)
		if err != nil {
			return err
		}
		if !found || row.deleted {
			return ErrMissingMetadata
		}
		return r.upsertKey(ctx, tx, id, key)
	})
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.PutKey").
			Str("document_id", id.String()).
			Str("kind", key.Key.Kind().String()).
			Msg("failed to store document key")
		return err
	}

	return nil
}

func (r *documentRepository) upsertKey(ctx context.Context, q querier, id models.DocumentIdentifier, key models.StoredKey) error {
	query, args, err := buildUpsertKeyQuery(r.builder, r.owner, id, key)
	if err != nil {
		return err
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// GetKey returns the key record of a live document.
func (r *documentRepository) GetKey(ctx context.Context, id models.DocumentIdentifier) (models.StoredKey, error) {
	if _, err := r.Metadata(ctx, id); err != nil {
		return models.StoredKey{}, err
	}

	query, args, err := buildSelectKeyQuery(r.builder, r.owner, id)
	if err != nil {
		return models.StoredKey{}, err
	}

	var (
		kind, origin int
		key          models.StoredKey
		data         []byte
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&kind, &origin, &key.SharedKeyID, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredKey{}, ErrMissingKey
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.GetKey").
			Str("document_id", id.String()).
			Msg("failed to scan document key")
		return models.StoredKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	key.Origin = models.KeyOrigin(origin)
	switch models.KeyKind(kind) {
	case models.KeyKindOnefold:
		key.Key = models.OnefoldKey(data)
	case models.KeyKindTwofold:
		key.Key = models.TwofoldKey(data)
	default:
		return models.StoredKey{}, models.ErrMalformedKey
	}
	return key, nil
}

// Delete removes every trace of the document. Deleting an unknown
// identifier is not an error.
func (r *documentRepository) Delete(ctx context.Context, id models.DocumentIdentifier) error {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := r.dropContents(ctx, tx, id); err != nil {
			return err
		}
		query, args, err := buildDeleteQuery(r.builder, documentsTable, "id", r.owner, id)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.Delete").
			Str("document_id", id.String()).
			Msg("failed to delete document")
	}
	return err
}

// Tombstone drops body and key and flags the metadata row as deleted.
func (r *documentRepository) Tombstone(ctx context.Context, id models.DocumentIdentifier) error {
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		_, found, err := r.lookup(ctx, tx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrMissingMetadata
		}
		if err = r.dropContents(ctx, tx, id); err != nil {
			return err
		}

		query, args, err := buildMarkDeletedQuery(r.builder, r.owner, id)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.Tombstone").
			Str("document_id", id.String()).
			Msg("failed to tombstone document")
	}
	return err
}

func (r *documentRepository) dropContents(ctx context.Context, tx *sql.Tx, id models.DocumentIdentifier) error {
	for _, table := range []string{keysTable, chunksTable} {
		query, args, err := buildDeleteQuery(r.builder, table, "document_id", r.owner, id)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

// IsTombstoned reports whether id carries a deleted marker.
func (r *documentRepository) IsTombstoned(ctx context.Context, id models.DocumentIdentifier) (bool, error) {
	row, found, err := r.lookup(ctx, r.DB, id)
	if err != nil {
		return false, err
	}
	return found && row.deleted, nil
}

// ListMetadata lists live documents ordered by creation time.
func (r *documentRepository) ListMetadata(ctx context.Context) ([]models.DocumentMetadata, error) {
	rows, err := r.list(ctx, false)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.ListMetadata").
			Msg("failed to list documents")
		return nil, err
	}

	result := make([]models.DocumentMetadata, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.metadata)
	}
	return result, nil
}

// ListTombstones lists identifiers carrying a deleted marker.
func (r *documentRepository) ListTombstones(ctx context.Context) ([]models.DocumentIdentifier, error) {
	rows, err := r.list(ctx, true)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.ListTombstones").
			Msg("failed to list tombstones")
		return nil, err
	}

	result := make([]models.DocumentIdentifier, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.metadata.ID)
	}
	return result, nil
}

func (r *documentRepository) list(ctx context.Context, deleted bool) ([]documentRow, error) {
	query, args, err := buildListQuery(r.builder, r.owner, deleted)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]documentRow, 0, 16)
	for rows.Next() {
		row, scanErr := scanDocumentRow(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return result, nil
}
