// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailure is returned whenever an AEAD open fails. It
	// signals tampering, corruption or a key/metadata mismatch and must never
	// be retried with the same inputs.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrInvalidKeyOrMetadata is returned by UnwrapForTerminal when the
	// twofold key does not open under the device key and metadata.
	ErrInvalidKeyOrMetadata = errors.New("invalid key or metadata")

	// ErrNoSharedKey is returned when an operation needs the SharedKey before
	// the operator has entered it.
	ErrNoSharedKey = errors.New("shared key is not established")

	// ErrInvalidSharedKey is returned when the transcribed SharedKey does not
	// decode to KeySize bytes.
	ErrInvalidSharedKey = errors.New("invalid shared key")

	// ErrInvalidMnemonic is returned when a recovery phrase fails the BIP-39
	// checksum or word list.
	ErrInvalidMnemonic = errors.New("invalid recovery mnemonic")
)
