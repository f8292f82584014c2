// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request parsing errors of the operator API.
var (
	// ErrInvalidJSON is returned when a request body is not the expected
	// JSON document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidWait is returned when the wait query parameter is not a
	// non-negative duration.
	ErrInvalidWait = errors.New("invalid wait duration")

	// ErrBodyTooLarge is returned when an uploaded document exceeds the
	// transfer limit.
	ErrBodyTooLarge = errors.New("document body too large")
)
