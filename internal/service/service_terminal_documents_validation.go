// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/health-enclave/internal/validators"
	"github.com/MKhiriev/health-enclave/models"
)

// terminalDocumentsValidationService rejects malformed documents and
// identifiers before they reach the coordinator. Calls it does not check
// pass through to the embedded service.
type terminalDocumentsValidationService struct {
	TerminalDocumentsService
	validator validators.Validator
}

// NewTerminalDocumentsValidationService wraps inner. Operator input fails
// with ErrInvalidDocument, device input with models.ErrInvalidDocumentMetadata.
func NewTerminalDocumentsValidationService(inner TerminalDocumentsService, maxBodySize int64) TerminalDocumentsService {
	return &terminalDocumentsValidationService{
		TerminalDocumentsService: inner,
		validator:                validators.NewDocumentValidator(maxBodySize),
	}
}

func (v *terminalDocumentsValidationService) AddDocument(ctx context.Context, name string, body []byte) (models.DocumentMetadata, error) {
	if err := v.validator.Validate(ctx, models.NewDocument{Name: name, Body: body}); err != nil {
		return models.DocumentMetadata{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return v.TerminalDocumentsService.AddDocument(ctx, name, body)
}

func (v *terminalDocumentsValidationService) RequestDocument(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Retrieval{}, err
	}
	return v.TerminalDocumentsService.RequestDocument(ctx, id)
}

func (v *terminalDocumentsValidationService) RetrieveDocument(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Retrieval{}, err
	}
	return v.TerminalDocumentsService.RetrieveDocument(ctx, id)
}

func (v *terminalDocumentsValidationService) DocumentAdvertised(ctx context.Context, md models.DocumentMetadata) error {
	if err := v.validator.Validate(ctx, md, validators.FieldID, validators.FieldName, validators.FieldCreatedBy); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidDocumentMetadata, err)
	}
	return v.TerminalDocumentsService.DocumentAdvertised(ctx, md)
}

func (v *terminalDocumentsValidationService) DocumentReceived(ctx context.Context, unit models.DocumentUnit) error {
	if err := v.validator.Validate(ctx, unit.Metadata, validators.FieldID, validators.FieldName, validators.FieldCreatedBy); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidDocumentMetadata, err)
	}
	return v.TerminalDocumentsService.DocumentReceived(ctx, unit)
}

func (v *terminalDocumentsValidationService) DocumentDeleted(ctx context.Context, id models.DocumentIdentifier) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return err
	}
	return v.TerminalDocumentsService.DocumentDeleted(ctx, id)
}
