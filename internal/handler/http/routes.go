// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/health-enclave/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)

		r.Put("/api/shared-key", h.setSharedKey)
		r.Get("/api/session", h.getSession)

		r.Get("/api/documents", h.listDocuments)
		r.Post("/api/documents", h.addDocument)
		r.Get("/api/documents/{id}", h.getDocument)

		r.Get("/api/version", h.getServerVersion)
	})

	router.Method("GET", "/metrics", metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
