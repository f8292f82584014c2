// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/models"
)

const testDocumentID models.DocumentIdentifier = "0190a5d0-7c1e-7b3a-9f00-1234567890ab"

func newTestOperatorAdapter(t *testing.T, serverURL string) *httpOperatorAdapter {
	t.Helper()
	a, err := NewHTTPOperatorAdapter(config.Adapter{OperatorAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpOperatorAdapter)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{in: " https://terminal.local:8443/ ", want: "https://terminal.local:8443"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPOperatorAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPOperatorAdapter(config.Adapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── SetSharedKey ─────────────────────────────────────────────────────────────

func TestSetSharedKey_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/shared-key", r.URL.Path)

		var req models.SharedKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c2hhcmVk", req.SharedKey)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SharedKeyResponse{Fingerprint: "0011223344556677"})
	}))
	defer srv.Close()

	a := newTestOperatorAdapter(t, srv.URL)
	fp, err := a.SetSharedKey(context.Background(), " c2hhcmVk\n")

	require.NoError(t, err)
	assert.Equal(t, "0011223344556677", fp)
}

func TestSetSharedKey_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid shared key"}`))
	}))
	defer srv.Close()

	a := newTestOperatorAdapter(t, srv.URL)
	_, err := a.SetSharedKey(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Session / ListDocuments / BuildInfo ──────────────────────────────────────

func TestSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SessionInfo{State: "active", Identity: "abcd"})
	}))
	defer srv.Close()

	info, err := newTestOperatorAdapter(t, srv.URL).Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "active", info.State)
	assert.Equal(t, "abcd", info.Identity)
}

func TestListDocuments_Success(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	want := []models.DocumentSummary{{
		DocumentMetadata: models.NewDocumentMetadata(testDocumentID, "report.pdf", "Dr. X", created),
		Stored:           true,
		OnDevice:         true,
	}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := newTestOperatorAdapter(t, srv.URL).ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "report.pdf", got[0].Name)
	assert.True(t, got[0].CreatedAt.Equal(created))
	assert.True(t, got[0].OnDevice)
}

func TestBuildInfo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AppBuildInfo{Version: "1.0.0"})
	}))
	defer srv.Close()

	info, err := newTestOperatorAdapter(t, srv.URL).BuildInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", info.Version)
}

// ── AddDocument ──────────────────────────────────────────────────────────────

func TestAddDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "report.pdf", r.URL.Query().Get("name"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("HELLO"), body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.NewDocumentMetadata(testDocumentID, "report.pdf", "Dr. X", time.Now()))
	}))
	defer srv.Close()

	md, err := newTestOperatorAdapter(t, srv.URL).AddDocument(context.Background(), "report.pdf", []byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, testDocumentID, md.ID)
	assert.Equal(t, "Dr. X", md.CreatedBy)
}

func TestAddDocument_NoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestOperatorAdapter(t, srv.URL).AddDocument(context.Background(), "a", []byte("b"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAddDocument_NoSharedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	}))
	defer srv.Close()

	_, err := newTestOperatorAdapter(t, srv.URL).AddDocument(context.Background(), "a", []byte("b"))
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

// ── GetDocument ──────────────────────────────────────────────────────────────

func TestGetDocument_Ready(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 5_000_000, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/documents/"+testDocumentID.String(), r.URL.Path)
		assert.Equal(t, "2s", r.URL.Query().Get("wait"))

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set(models.HeaderDocumentName, "report.pdf")
		w.Header().Set(models.HeaderDocumentCreatedBy, "Dr. X")
		w.Header().Set(models.HeaderDocumentCreatedAt, created.Format(time.RFC3339Nano))
		_, _ = w.Write([]byte("HELLO"))
	}))
	defer srv.Close()

	got, err := newTestOperatorAdapter(t, srv.URL).GetDocument(context.Background(), testDocumentID, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, models.RetrievalReady, got.Status)
	assert.Equal(t, []byte("HELLO"), got.Body)
	assert.Equal(t, "report.pdf", got.Metadata.Name)
	assert.Equal(t, "Dr. X", got.Metadata.CreatedBy)
	assert.True(t, got.Metadata.CreatedAt.Equal(created))
}

func TestGetDocument_Pending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("wait"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(models.RetrievalResponse{ID: testDocumentID, Status: "pending"})
	}))
	defer srv.Close()

	got, err := newTestOperatorAdapter(t, srv.URL).GetDocument(context.Background(), testDocumentID, 0)
	require.NoError(t, err)
	assert.Equal(t, models.RetrievalPending, got.Status)
	assert.Empty(t, got.Body)
}

func TestGetDocument_Errors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusPreconditionFailed, ErrPreconditionFailed},
		{http.StatusUnprocessableEntity, crypto.ErrAuthenticationFailure},
		{http.StatusRequestEntityTooLarge, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestOperatorAdapter(t, srv.URL).GetDocument(context.Background(), testDocumentID, 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetDocument_InternalServerErrorRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestOperatorAdapter(t, srv.URL).GetDocument(context.Background(), testDocumentID, 0)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, 3, calls)
}
