// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrInvalidTLSConfig is returned when only one of the certificate and
	// key files is configured, or they cannot be loaded.
	ErrInvalidTLSConfig = errors.New("invalid tls configuration")
)
