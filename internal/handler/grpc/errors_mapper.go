// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/models"
)

// errorCodes is matched in order, so wrapped context errors must come after
// the domain errors wrapping them.
var errorCodes = []struct {
	target error
	code   codes.Code
}{
	{session.ErrAlreadyConnected, codes.AlreadyExists},
	{store.ErrDocumentExists, codes.AlreadyExists},

	{session.ErrInvalidIdentity, codes.Unauthenticated},

	{session.ErrSessionLost, codes.Unavailable},
	{session.ErrSessionClosed, codes.Unavailable},
	{service.ErrNoSession, codes.Unavailable},

	{store.ErrMissingMetadata, codes.NotFound},
	{store.ErrMissingKey, codes.NotFound},
	{service.ErrDocumentNotFound, codes.NotFound},

	{crypto.ErrAuthenticationFailure, codes.DataLoss},
	{crypto.ErrInvalidKeyOrMetadata, codes.DataLoss},
	{crypto.ErrNoSharedKey, codes.FailedPrecondition},

	{transfer.ErrOutOfOrderFrame, codes.InvalidArgument},
	{transfer.ErrDuplicateFrame, codes.InvalidArgument},
	{transfer.ErrMalformedFrame, codes.InvalidArgument},
	{transfer.ErrIncompleteStream, codes.InvalidArgument},
	{transfer.ErrDocumentTooLarge, codes.InvalidArgument},
	{models.ErrMalformedKey, codes.InvalidArgument},
	{models.ErrInvalidDocumentIdentifier, codes.InvalidArgument},
	{models.ErrInvalidDocumentMetadata, codes.InvalidArgument},
	{service.ErrInvalidDocument, codes.InvalidArgument},
	{service.ErrUnexpectedKeyKind, codes.InvalidArgument},
	{service.ErrUnknownMissingKind, codes.InvalidArgument},

	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// toStatus converts a domain error into a gRPC status error. Errors that
// already carry a status pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, e := range errorCodes {
		if errors.Is(err, e.target) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}
