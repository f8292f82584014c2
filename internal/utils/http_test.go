// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{
			name:   "shared key fingerprint",
			data:   models.SharedKeyResponse{Fingerprint: "ab12cd34"},
			status: http.StatusOK,
			want:   `{"fingerprint":"ab12cd34"}`,
		},
		{
			name:   "pending retrieval",
			data:   models.RetrievalResponse{ID: "0192f3a4-5b6c-7d8e-9f00-112233445566", Status: models.RetrievalPending.String()},
			status: http.StatusAccepted,
			want:   `{"id":"0192f3a4-5b6c-7d8e-9f00-112233445566","status":"pending"}`,
		},
		{
			name:   "empty document list",
			data:   []models.DocumentSummary{},
			status: http.StatusOK,
			want:   `[]`,
		},
		{
			name:   "nil",
			data:   nil,
			status: http.StatusOK,
			want:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestWriteJSON_Unserializable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, "no active session", http.StatusConflict)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"no active session"}`, w.Body.String())
}
