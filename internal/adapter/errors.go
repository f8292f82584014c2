// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// gRPC transport errors without a counterpart in the domain packages.
var (
	// ErrProtocolViolation is returned when the terminal rejected a stream as
	// malformed.
	ErrProtocolViolation = errors.New("terminal rejected the stream")

	// ErrInvalidTLSConfig is returned when the pinned CA cannot be loaded.
	ErrInvalidTLSConfig = errors.New("invalid tls configuration")
)

// Operator API errors, one per documented status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("access denied by device")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("no device session")
	ErrPreconditionFailed  = errors.New("shared key not established")
	ErrTooLarge            = errors.New("document too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
