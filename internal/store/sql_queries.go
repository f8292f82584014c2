// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/health-enclave/models"
)

const (
	documentsTable = "documents"
	chunksTable    = "document_chunks"
	keysTable      = "document_keys"

	ownerAndID         = "owner = ? AND id = ?"
	ownerAndDocumentID = "owner = ? AND document_id = ?"

	upsertKeySuffix = `ON CONFLICT (owner, document_id) DO UPDATE SET
		kind = excluded.kind,
		origin = excluded.origin,
		shared_key_id = excluded.shared_key_id,
		data = excluded.data`
)

var metadataColumns = []string{"id", "name", "created_at", "created_by", "deleted"}

func toSQL(b interface {
	ToSql() (string, []any, error)
}) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectDocumentQuery(b sq.StatementBuilderType, owner string, id models.DocumentIdentifier) (string, []any, error) {
	return toSQL(b.Select(metadataColumns...).
		From(documentsTable).
		Where(ownerAndID, owner, string(id)))
}

func buildInsertDocumentQuery(b sq.StatementBuilderType, owner string, md models.DocumentMetadata) (string, []any, error) {
	return toSQL(b.Insert(documentsTable).
		Columns("owner", "id", "name", "created_at", "created_by", "deleted").
		Values(owner, string(md.ID), md.Name, md.CreatedAt.UnixMilli(), md.CreatedBy, false))
}

func buildInsertChunkQuery(b sq.StatementBuilderType, owner string, id models.DocumentIdentifier, seq int, chunk []byte) (string, []any, error) {
	return toSQL(b.Insert(chunksTable).
		Columns("owner", "document_id", "seq", "data").
		Values(owner, string(id), seq, chunk))
}

func buildSelectChunksQuery(b sq.StatementBuilderType, owner string, id models.DocumentIdentifier) (string, []any, error) {
	return toSQL(b.Select("data").
		From(chunksTable).
		Where(ownerAndDocumentID, owner, string(id)).
		OrderBy("seq"))
}

func buildUpsertKeyQuery(b sq.StatementBuilderType, owner string, id models.DocumentIdentifier, key models.StoredKey) (string, []any, error) {
	return toSQL(b.Insert(keysTable).
		Columns("owner", "document_id", "kind", "origin", "shared_key_id", "data").
		Values(owner, string(id), int(key.Key.Kind()), int(key.Origin), key.SharedKeyID, key.Key.Data()).
		Suffix(upsertKeySuffix))
}

func buildSelectKeyQuery(b sq.StatementBuilderType, owner string, id models.DocumentIdentifier) (string, []any, error) {
	return toSQL(b.Select("kind", "origin", "shared_key_id", "data").
		From(keysTable).
		Where(ownerAndDocumentID, owner, string(id)))
}

func buildDeleteQuery(b sq.StatementBuilderType, table, idColumn, owner string, id models.DocumentIdentifier) (string, []any, error) {
	return toSQL(b.Delete(table).
		Where("owner = ? AND "+idColumn+" = ?", owner, string(id)))
}

func buildMarkDeletedQuery(b sq.StatementBuilderType, owner string, id models.DocumentIdentifier) (string, []any, error) {
	return toSQL(b.Update(documentsTable).
		Set("deleted", true).
		Where(ownerAndID, owner, string(id)))
}

func buildListQuery(b sq.StatementBuilderType, owner string, deleted bool) (string, []any, error) {
	return toSQL(b.Select(metadataColumns...).
		From(documentsTable).
		Where("owner = ? AND deleted = ?", owner, deleted).
		OrderBy("created_at", "id"))
}
