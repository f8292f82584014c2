// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// DeviceIdentitySize is the length of a device identity in bytes.
const DeviceIdentitySize = 256

// maxOwnerLength bounds the storage scope name derived from an identity.
const maxOwnerLength = 255

// ErrMalformedIdentity is returned when a hex identity cannot be decoded into
// exactly DeviceIdentitySize bytes.
var ErrMalformedIdentity = errors.New("malformed device identity")

// DeviceIdentity is the opaque random value a device presents as a bearer
// token on every call. It never rotates.
type DeviceIdentity [DeviceIdentitySize]byte

// ParseDeviceIdentity decodes the hex form sent in call metadata.
func ParseDeviceIdentity(s string) (DeviceIdentity, error) {
	var id DeviceIdentity

	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrMalformedIdentity, err)
	}
	if len(raw) != DeviceIdentitySize {
		return id, fmt.Errorf("%w: got %d bytes", ErrMalformedIdentity, len(raw))
	}

	copy(id[:], raw)
	return id, nil
}

// Hex returns the lowercase hex encoding of the identity.
func (id DeviceIdentity) Hex() string {
	return hex.EncodeToString(id[:])
}

// Owner returns the storage scope for the identity: its hex form truncated to
// the maximum name length.
func (id DeviceIdentity) Owner() string {
	h := id.Hex()
	if len(h) > maxOwnerLength {
		return h[:maxOwnerLength]
	}
	return h
}

// Short returns a log-friendly prefix of the hex form.
func (id DeviceIdentity) Short() string {
	return id.Hex()[:12]
}

// Equal compares identities in constant time.
func (id DeviceIdentity) Equal(other DeviceIdentity) bool {
	return subtle.ConstantTimeCompare(id[:], other[:]) == 1
}

// IsZero reports whether the identity is unset.
func (id DeviceIdentity) IsZero() bool {
	var zero DeviceIdentity
	return id.Equal(zero)
}
