// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/awnumar/memguard"
	"github.com/fxamacker/cbor/v2"

	"github.com/MKhiriev/health-enclave/models"
)

// EncryptDocument generates a fresh document key, seals body under it and
// seals the key under sharedKey. Both seals are bound to metadata.
func EncryptDocument(body []byte, sharedKey SharedKey, metadata models.DocumentMetadata) (models.OnefoldEncryptedKey, []byte, error) {
	ad, err := metadata.AssociatedData()
	if err != nil {
		return nil, nil, err
	}

	documentKey, err := RandomBytes(KeySize)
	if err != nil {
		return nil, nil, err
	}
	defer memguard.WipeBytes(documentKey)
	defer memguard.WipeBytes(sharedKey[:])

	encryptedBody, err := Seal(body, documentKey, ad)
	if err != nil {
		return nil, nil, fmt.Errorf("error sealing document body: %w", err)
	}

	onefold, err := Seal(documentKey, sharedKey[:], ad)
	if err != nil {
		return nil, nil, fmt.Errorf("error sealing document key: %w", err)
	}

	return onefold, encryptedBody, nil
}

// DecryptDocument opens the onefold key under sharedKey and the body under the
// recovered document key.
func DecryptDocument(encryptedBody []byte, onefold models.OnefoldEncryptedKey, sharedKey SharedKey, metadata models.DocumentMetadata) ([]byte, error) {
	ad, err := metadata.AssociatedData()
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(sharedKey[:])

	documentKey, err := Open(onefold, sharedKey[:], ad)
	if err != nil {
		return nil, fmt.Errorf("error opening document key %s: %w", metadata.ID, err)
	}
	defer memguard.WipeBytes(documentKey)

	if len(documentKey) != KeySize {
		return nil, fmt.Errorf("%w: document key has %d bytes", ErrAuthenticationFailure, len(documentKey))
	}

	body, err := Open(encryptedBody, documentKey, ad)
	if err != nil {
		return nil, fmt.Errorf("error opening document body %s: %w", metadata.ID, err)
	}
	return body, nil
}

// WrapForDevice serializes onefold and seals it under deviceKey, bound to
// metadata.
func WrapForDevice(onefold models.OnefoldEncryptedKey, deviceKey DeviceKey, metadata models.DocumentMetadata) (models.TwofoldEncryptedKey, error) {
	ad, err := metadata.AssociatedData()
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(deviceKey[:])

	serialized, err := cbor.Marshal([]byte(onefold))
	if err != nil {
		return nil, fmt.Errorf("error serializing onefold key: %w", err)
	}

	twofold, err := Seal(serialized, deviceKey[:], ad)
	if err != nil {
		return nil, fmt.Errorf("error sealing onefold key: %w", err)
	}
	return twofold, nil
}

// UnwrapForTerminal opens twofold under deviceKey and metadata and recovers the
// onefold key. A mismatch yields ErrInvalidKeyOrMetadata wrapping
// ErrAuthenticationFailure.
func UnwrapForTerminal(twofold models.TwofoldEncryptedKey, deviceKey DeviceKey, metadata models.DocumentMetadata) (models.OnefoldEncryptedKey, error) {
	ad, err := metadata.AssociatedData()
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(deviceKey[:])

	serialized, err := Open(twofold, deviceKey[:], ad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyOrMetadata, err)
	}

	var onefold []byte
	if err := cbor.Unmarshal(serialized, &onefold); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyOrMetadata, err)
	}
	return onefold, nil
}
