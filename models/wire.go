// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Heartbeat is the empty liveness message exchanged on the keep-alive stream.
type Heartbeat struct{}

// Empty is the request or response of calls that carry no payload.
type Empty struct{}

// IdentifierMessage carries a single document identifier.
type IdentifierMessage struct {
	ID DocumentIdentifier `cbor:"1,keyasint"`
}

// KeyWithIdentifier is the standalone key transfer used when a key is granted
// or forwarded for a body the receiver already holds.
type KeyWithIdentifier struct {
	ID  DocumentIdentifier   `cbor:"1,keyasint"`
	Key EncryptedDocumentKey `cbor:"2,keyasint"`
}

// DocumentFrame is one frame of a document transfer. Exactly one field is set
// per frame and frames arrive as Metadata, Key, then zero or more Chunk.
type DocumentFrame struct {
	Metadata *DocumentMetadata     `cbor:"1,keyasint,omitempty"`
	Key      *EncryptedDocumentKey `cbor:"2,keyasint,omitempty"`
	Chunk    []byte                `cbor:"3,keyasint,omitempty"`
}

// MissingKind selects one of the four reconciliation queues.
type MissingKind uint8

const (
	MissingDocumentsForDevice MissingKind = iota + 1
	MissingDocumentsForTerminal
	MissingOnefoldKeysForTerminal
	MissingTwofoldKeysForTerminal
)

func (k MissingKind) String() string {
	switch k {
	case MissingDocumentsForDevice:
		return "documents_for_device"
	case MissingDocumentsForTerminal:
		return "documents_for_terminal"
	case MissingOnefoldKeysForTerminal:
		return "onefold_keys_for_terminal"
	case MissingTwofoldKeysForTerminal:
		return "twofold_keys_for_terminal"
	default:
		return "unknown"
	}
}

// AccessRequest is raised on the device when the terminal asks for a onefold
// key. The holder answers it by granting or denying.
type AccessRequest struct {
	Metadata DocumentMetadata
}

// RetrievalStatus is the outcome of a terminal request to open a document.
type RetrievalStatus uint8

const (
	RetrievalReady RetrievalStatus = iota + 1
	RetrievalPending
)

func (s RetrievalStatus) String() string {
	switch s {
	case RetrievalReady:
		return "ready"
	case RetrievalPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Retrieval is the non-blocking result of opening a document on the terminal.
// Body is set only when Status is RetrievalReady.
type Retrieval struct {
	Status   RetrievalStatus
	Metadata DocumentMetadata
	Body     []byte
}
