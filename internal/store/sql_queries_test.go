// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/models"
)

func TestBuildQueries_Placeholders(t *testing.T) {
	sqlite := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	pg := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildSelectDocumentQuery(sqlite, "owner", testDocID)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, created_at, created_by, deleted FROM documents WHERE owner = ? AND id = ?", query)
	assert.Equal(t, []any{"owner", string(testDocID)}, args)

	query, _, err = buildSelectChunksQuery(pg, "owner", testDocID)
	require.NoError(t, err)
	assert.Equal(t, "SELECT data FROM document_chunks WHERE owner = $1 AND document_id = $2 ORDER BY seq", query)
}

func TestNewDB_DialectPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{name: "sqlite", dialect: DialectSQLite, want: "SELECT data FROM document_chunks WHERE owner = ? AND document_id = ? ORDER BY seq"},
		{name: "postgres", dialect: DialectPostgres, want: "SELECT data FROM document_chunks WHERE owner = $1 AND document_id = $2 ORDER BY seq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, _, err := buildSelectChunksQuery(db.builder, "owner", testDocID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

func TestBuildUpsertKeyQuery(t *testing.T) {
	pg := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	key := models.StoredKey{
		Key:         models.OnefoldKey([]byte("k")),
		Origin:      models.KeyOriginGranted,
		SharedKeyID: "fp",
	}

	query, args, err := buildUpsertKeyQuery(pg, "owner", testDocID, key)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO document_keys (owner,document_id,kind,origin,shared_key_id,data) VALUES ($1,$2,$3,$4,$5,$6)")
	assert.Contains(t, query, "ON CONFLICT (owner, document_id) DO UPDATE SET")
	assert.Equal(t, []any{"owner", string(testDocID), int(models.KeyKindOnefold), int(models.KeyOriginGranted), "fp", []byte("k")}, args)
}

func TestBuildInsertDocumentQuery_StoresUnixMillis(t *testing.T) {
	sqlite := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	md := testUnit(testDocID, nil).Metadata

	_, args, err := buildInsertDocumentQuery(sqlite, "owner", md)
	require.NoError(t, err)
	assert.Equal(t, md.CreatedAt.UnixMilli(), args[3])
	assert.Equal(t, false, args[5])
}
