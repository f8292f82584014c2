// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrAlreadyConnected is returned by Admit while another session is
	// Active. The existing session is not disturbed.
	ErrAlreadyConnected = errors.New("another device is already connected")

	// ErrInvalidIdentity is returned for a malformed identity or one that does
	// not match the Active session.
	ErrInvalidIdentity = errors.New("invalid device identity")

	// ErrSessionLost is the cause attached to a session context that ended
	// by heartbeat timeout or transport failure.
	ErrSessionLost = errors.New("session lost")

	// ErrSessionClosed is the cause attached to a session context that ended
	// gracefully.
	ErrSessionClosed = errors.New("session closed")
)
