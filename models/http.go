// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SharedKeyRequest transcribes the terminal's SharedKey (base64).
type SharedKeyRequest struct {
	SharedKey string `json:"shared_key"`
}

// SharedKeyResponse reports the fingerprint of the installed SharedKey.
type SharedKeyResponse struct {
	Fingerprint string `json:"fingerprint"`
}

// RetrievalResponse is the body of a 202 answer while the device has not yet
// decided on an access request.
type RetrievalResponse struct {
	ID     DocumentIdentifier `json:"id"`
	Status string             `json:"status"`
}

// Operator API headers carrying document metadata next to a raw body.
const (
	HeaderDocumentID        = "X-Document-Id"
	HeaderDocumentName      = "X-Document-Name"
	HeaderDocumentCreatedBy = "X-Document-Created-By"
	HeaderDocumentCreatedAt = "X-Document-Created-At"
)
