// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName         = errors.New("document name is required")
	ErrNameTooLong       = errors.New("document name is too long")
	ErrInvalidName       = errors.New("document name contains invalid characters")
	ErrEmptyBody         = errors.New("document body is required")
	ErrBodyTooLarge      = errors.New("document body is too large")
	ErrCreatedByTooLong  = errors.New("document author is too long")
	ErrInvalidCreatedBy  = errors.New("document author contains invalid characters")
	ErrMissingCreatedAt  = errors.New("document creation time is required")
	ErrInvalidIdentifier = errors.New("invalid document identifier")
)
