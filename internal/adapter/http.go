// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/utils"
	"github.com/MKhiriev/health-enclave/models"
)

type httpOperatorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPOperatorAdapter constructs the HTTP/REST implementation of
// [OperatorAdapter]. It normalises and validates the base URL from
// adapterCfg.OperatorAddress and configures the underlying HTTP client with
// the request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPOperatorAdapter(adapterCfg config.Adapter, log *logger.Logger) (OperatorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.OperatorAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter operator address: %w", err)
	}

	return &httpOperatorAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSharedKey implements [OperatorAdapter]. It PUTs the encoded key to
// /api/shared-key and returns the fingerprint the terminal computed.
func (h *httpOperatorAdapter) SetSharedKey(ctx context.Context, encoded string) (string, error) {
	var result models.SharedKeyResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SharedKeyRequest{SharedKey: strings.TrimSpace(encoded)}).
		SetResult(&result).
		Put("/api/shared-key")
	if err != nil {
		return "", fmt.Errorf("set shared key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Fingerprint, nil
}

// Session implements [OperatorAdapter].
func (h *httpOperatorAdapter) Session(ctx context.Context) (models.SessionInfo, error) {
	var info models.SessionInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/session")
	if err != nil {
		return models.SessionInfo{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionInfo{}, err
	}

	return info, nil
}

// ListDocuments implements [OperatorAdapter].
func (h *httpOperatorAdapter) ListDocuments(ctx context.Context) ([]models.DocumentSummary, error) {
	var documents []models.DocumentSummary

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&documents).
		Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return documents, nil
}

// AddDocument implements [OperatorAdapter]. The body is sent raw; the name
// travels as a query parameter.
func (h *httpOperatorAdapter) AddDocument(ctx context.Context, name string, body []byte) (models.DocumentMetadata, error) {
	var md models.DocumentMetadata

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetQueryParam("name", name).
		SetBody(body).
		SetResult(&md).
		Post("/api/documents")
	if err != nil {
		return models.DocumentMetadata{}, fmt.Errorf("add document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DocumentMetadata{}, err
	}

	return md, nil
}

// GetDocument implements [OperatorAdapter]. 200 carries the plaintext body,
// 202 means the device has not answered yet.
func (h *httpOperatorAdapter) GetDocument(ctx context.Context, id models.DocumentIdentifier, wait time.Duration) (models.Retrieval, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/octet-stream, application/json").
		SetPathParam("id", id.String())
	if wait > 0 {
		req.SetQueryParam("wait", wait.String())
	}

	resp, err := req.Get("/api/documents/{id}")
	if err != nil {
		return models.Retrieval{}, fmt.Errorf("get document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Retrieval{}, err
	}

	if resp.StatusCode() == http.StatusAccepted {
		return models.Retrieval{Status: models.RetrievalPending, Metadata: models.DocumentMetadata{ID: id}}, nil
	}

	md := models.DocumentMetadata{
		ID:        id,
		Name:      resp.Header().Get(models.HeaderDocumentName),
		CreatedBy: resp.Header().Get(models.HeaderDocumentCreatedBy),
	}
	if createdAt := resp.Header().Get(models.HeaderDocumentCreatedAt); createdAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			md.CreatedAt = t.UTC()
		}
	}

	return models.Retrieval{Status: models.RetrievalReady, Metadata: md, Body: resp.Body()}, nil
}

// BuildInfo implements [OperatorAdapter].
func (h *httpOperatorAdapter) BuildInfo(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("build info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}
