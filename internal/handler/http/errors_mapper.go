// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrInvalidWait:                      http.StatusBadRequest,
	ErrBodyTooLarge:                     http.StatusRequestEntityTooLarge,
	service.ErrInvalidDocument:          http.StatusBadRequest,
	models.ErrInvalidDocumentIdentifier: http.StatusBadRequest,
	crypto.ErrInvalidSharedKey:          http.StatusBadRequest,

	service.ErrNoPermission: http.StatusForbidden,

	service.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrMissingMetadata:    http.StatusNotFound,

	service.ErrNoSession:   http.StatusConflict,
	session.ErrSessionLost: http.StatusConflict,

	crypto.ErrNoSharedKey: http.StatusPreconditionFailed,

	crypto.ErrAuthenticationFailure: http.StatusUnprocessableEntity,

	store.ErrMissingKey:           http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
