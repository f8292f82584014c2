// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/utils"
	"github.com/MKhiriev/health-enclave/models"
)

// setSharedKey installs the SharedKey transcribed from the device.
func (h *Handler) setSharedKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SharedKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.setSharedKey").Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	fingerprint, err := h.services.DocumentsService.SetSharedKey(req.SharedKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.setSharedKey").Msg("error installing shared key")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("fingerprint", fingerprint).Msg("shared key installed")
	_, _ = utils.WriteJSON(w, models.SharedKeyResponse{Fingerprint: fingerprint}, http.StatusOK)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.sessions.Snapshot(), http.StatusOK)
}
