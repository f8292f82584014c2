// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/health-enclave/internal/logger"
)

// DenyWorker refuses every access request. A headless device runs it in
// place of the consent prompt, so documents never leave it unattended.
type DenyWorker struct {
	responder AccessResponder
	logger    *logger.Logger
}

func NewDenyWorker(responder AccessResponder, logger *logger.Logger) *DenyWorker {
	return &DenyWorker{responder: responder, logger: logger}
}

func (w *DenyWorker) Run(ctx context.Context) error {
	requests := w.responder.AccessRequests()
	for {
		select {
		case <-ctx.Done():
			return nil
		case req, ok := <-requests:
			if !ok {
				return nil
			}

			err := w.responder.DenyAccess(ctx, req.Metadata.ID)
			w.logger.Info().
				Err(err).
				Str("func", "DenyWorker.Run").
				Str("document_id", req.Metadata.ID.String()).
				Str("name", req.Metadata.Name).
				Msg("access request denied")
		}
	}
}
