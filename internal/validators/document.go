// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/health-enclave/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the document identifier.
	FieldID = "id"

	// FieldName targets the human-readable document name.
	FieldName = "name"

	// FieldBody targets the plaintext of a new document.
	FieldBody = "body"

	// FieldCreatedBy targets the practitioner who created the document.
	FieldCreatedBy = "created_by"

	// FieldCreatedAt targets the creation time of the document.
	FieldCreatedAt = "created_at"
)

// MaxTextLength bounds the name and the author of a document in bytes.
const MaxTextLength = 255

// DocumentValidator implements Validator for models.NewDocument,
// models.DocumentMetadata and models.DocumentIdentifier. Value and pointer
// forms are accepted.
type DocumentValidator struct {
	maxBodySize int64
}

// NewDocumentValidator constructs a DocumentValidator. A maxBodySize of zero
// or less leaves the body size unbounded.
func NewDocumentValidator(maxBodySize int64) Validator {
	return &DocumentValidator{maxBodySize: maxBodySize}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewDocument:
		return v.validateNewDocument(ctx, value, fields...)
	case *models.NewDocument:
		return v.validateNewDocument(ctx, *value, fields...)

	case models.DocumentMetadata:
		return v.validateMetadata(ctx, value, fields...)
	case *models.DocumentMetadata:
		return v.validateMetadata(ctx, *value, fields...)

	case models.DocumentIdentifier:
		return validateIdentifier(value)
	case *models.DocumentIdentifier:
		return validateIdentifier(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateNewDocument(_ context.Context, doc models.NewDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(doc.Name); err != nil {
				return err
			}
		case FieldBody:
			if len(doc.Body) == 0 {
				return ErrEmptyBody
			}
			if v.maxBodySize > 0 && int64(len(doc.Body)) > v.maxBodySize {
				return fmt.Errorf("%w: %d bytes, limit is %d", ErrBodyTooLarge, len(doc.Body), v.maxBodySize)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateMetadata(_ context.Context, md models.DocumentMetadata, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldCreatedBy, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := validateIdentifier(md.ID); err != nil {
				return err
			}
		case FieldName:
			if err := validateName(md.Name); err != nil {
				return err
			}
		case FieldCreatedBy:
			if len(md.CreatedBy) > MaxTextLength {
				return ErrCreatedByTooLong
			}
			if !printable(md.CreatedBy) {
				return ErrInvalidCreatedBy
			}
		case FieldCreatedAt:
			if md.CreatedAt.IsZero() {
				return ErrMissingCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateIdentifier(id models.DocumentIdentifier) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}
	return nil
}

func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return ErrEmptyName
	case len(name) > MaxTextLength:
		return ErrNameTooLong
	case !printable(name):
		return ErrInvalidName
	}
	return nil
}

// printable reports whether s is valid UTF-8 without control characters.
func printable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
