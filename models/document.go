// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

var (
	// ErrInvalidDocumentIdentifier is returned when an identifier is not a UUID.
	ErrInvalidDocumentIdentifier = errors.New("invalid document identifier")
	// ErrInvalidDocumentMetadata is returned when metadata lacks a required field.
	ErrInvalidDocumentMetadata = errors.New("invalid document metadata")
)

// detEncMode produces the Core Deterministic Encoding used for associated data.
// Both peers must derive byte-identical AD from equal metadata.
var detEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// DocumentIdentifier is the UUID the terminal assigns to a document at
// creation time. It is the storage key on both sides.
type DocumentIdentifier string

// String implements fmt.Stringer.
func (id DocumentIdentifier) String() string {
	return string(id)
}

// Validate reports whether id is a well-formed UUID.
func (id DocumentIdentifier) Validate() error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentIdentifier, string(id))
	}
	return nil
}

// DocumentMetadata describes a document. It is immutable once created: its
// deterministic serialization is the associated data of every ciphertext
// bound to the document.
type DocumentMetadata struct {
	ID        DocumentIdentifier `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	CreatedBy string             `json:"created_by"`
}

// metadataWire is the canonical array form of DocumentMetadata. CreatedAt is
// carried as Unix milliseconds.
type metadataWire struct {
	_         struct{} `cbor:",toarray"`
	ID        string
	Name      string
	CreatedAt int64
	CreatedBy string
}

// NewDocumentMetadata builds metadata for a freshly created document. The
// creation time is normalized to UTC with millisecond precision so that it
// survives the wire form unchanged.
func NewDocumentMetadata(id DocumentIdentifier, name, createdBy string, createdAt time.Time) DocumentMetadata {
	return DocumentMetadata{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
		CreatedBy: createdBy,
	}
}

// Validate checks that the identifier is a UUID and the name is not blank.
func (m DocumentMetadata) Validate() error {
	if err := m.ID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: empty name for %s", ErrInvalidDocumentMetadata, m.ID)
	}
	return nil
}

func (m DocumentMetadata) wire() metadataWire {
	return metadataWire{
		ID:        string(m.ID),
		Name:      m.Name,
		CreatedAt: m.CreatedAt.UnixMilli(),
		CreatedBy: m.CreatedBy,
	}
}

// AssociatedData returns the deterministic serialization used as AEAD
// associated data.
func (m DocumentMetadata) AssociatedData() ([]byte, error) {
	ad, err := detEncMode.Marshal(m.wire())
	if err != nil {
		return nil, fmt.Errorf("error serializing metadata %s: %w", m.ID, err)
	}
	return ad, nil
}

// MarshalCBOR implements cbor.Marshaler with the same canonical form as
// AssociatedData.
func (m DocumentMetadata) MarshalCBOR() ([]byte, error) {
	return m.AssociatedData()
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *DocumentMetadata) UnmarshalCBOR(data []byte) error {
	var w metadataWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return err
	}

	*m = DocumentMetadata{
		ID:        DocumentIdentifier(w.ID),
		Name:      w.Name,
		CreatedAt: time.UnixMilli(w.CreatedAt).UTC(),
		CreatedBy: w.CreatedBy,
	}
	return nil
}

// Equal compares metadata field by field.
func (m DocumentMetadata) Equal(other DocumentMetadata) bool {
	return m.ID == other.ID &&
		m.Name == other.Name &&
		m.CreatedAt.Equal(other.CreatedAt) &&
		m.CreatedBy == other.CreatedBy
}

// DocumentUnit is the atomic unit of storage and transfer: metadata, the
// custody record of the document key, and the encrypted body.
type DocumentUnit struct {
	Metadata DocumentMetadata
	Key      StoredKey
	Body     []byte
}

// DocumentSummary is the operator-facing view of a document known to the
// terminal, either stored locally or advertised by the connected device.
type DocumentSummary struct {
	DocumentMetadata
	Stored   bool `json:"stored"`
	OnDevice bool `json:"on_device"`
	Readable bool `json:"readable"`
}

// NewDocument is a plaintext document an operator adds on the terminal.
type NewDocument struct {
	Name string
	Body []byte
}
