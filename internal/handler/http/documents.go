// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/utils"
	"github.com/MKhiriev/health-enclave/models"
)

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	documents, err := h.services.DocumentsService.ListDocuments(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listDocuments").Msg("error listing documents")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}
	if documents == nil {
		documents = []models.DocumentSummary{}
	}

	_, _ = utils.WriteJSON(w, documents, http.StatusOK)
}

// addDocument takes the raw request body as the document and the name from
// the query string.
func (h *Handler) addDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	name := r.URL.Query().Get("name")

	body := io.Reader(r.Body)
	if h.maxDocumentSize > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxDocumentSize)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		log.Err(err).Str("func", "*Handler.addDocument").Msg("error reading document body")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	md, err := h.services.DocumentsService.AddDocument(r.Context(), name, data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addDocument").Str("name", name).Msg("error adding document")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("document_id", md.ID.String()).Msg("document added")
	_, _ = utils.WriteJSON(w, md, http.StatusCreated)
}

// getDocument answers 200 with the plaintext, or 202 while the device has not
// decided. With ?wait=<duration> the request blocks up to that long first.
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := models.DocumentIdentifier(chi.URLParam(r, "id"))

	wait, err := parseWait(r.URL.Query().Get("wait"))
	if err != nil {
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	var retrieval models.Retrieval
	if wait > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), wait)
		retrieval, err = h.services.DocumentsService.RetrieveDocument(ctx, id)
		cancel()
		if errors.Is(err, service.ErrRetrievalPending) {
			retrieval, err = models.Retrieval{Status: models.RetrievalPending, Metadata: models.DocumentMetadata{ID: id}}, nil
		}
	} else {
		retrieval, err = h.services.DocumentsService.RequestDocument(r.Context(), id)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDocument").Str("document_id", id.String()).Msg("error retrieving document")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if retrieval.Status == models.RetrievalPending {
		_, _ = utils.WriteJSON(w, models.RetrievalResponse{ID: id, Status: retrieval.Status.String()}, http.StatusAccepted)
		return
	}

	md := retrieval.Metadata
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(models.HeaderDocumentID, md.ID.String())
	w.Header().Set(models.HeaderDocumentName, md.Name)
	w.Header().Set(models.HeaderDocumentCreatedBy, md.CreatedBy)
	w.Header().Set(models.HeaderDocumentCreatedAt, md.CreatedAt.UTC().Format(time.RFC3339Nano))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(retrieval.Body)
}

func parseWait(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	wait, err := time.ParseDuration(raw)
	if err != nil || wait < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWait, raw)
	}
	return wait, nil
}
