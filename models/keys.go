// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrMalformedKey is returned when a key record carries neither or both forms.
var ErrMalformedKey = errors.New("malformed encrypted document key")

// OnefoldEncryptedKey is a document key sealed under the terminal's SharedKey.
type OnefoldEncryptedKey []byte

// TwofoldEncryptedKey is a serialized onefold key sealed again under the
// device's DeviceKey.
type TwofoldEncryptedKey []byte

// KeyKind tags which custody form a key record holds.
type KeyKind uint8

const (
	KeyKindUnknown KeyKind = iota
	KeyKindOnefold
	KeyKindTwofold
)

func (k KeyKind) String() string {
	switch k {
	case KeyKindOnefold:
		return "onefold"
	case KeyKindTwofold:
		return "twofold"
	default:
		return "unknown"
	}
}

// KeyOrigin records how a key record came into a side's custody.
type KeyOrigin uint8

const (
	KeyOriginUnknown KeyOrigin = iota
	// KeyOriginCreated marks the onefold key produced when the terminal
	// created the document and has not yet handed it over.
	KeyOriginCreated
	// KeyOriginGranted marks a onefold key the device granted.
	KeyOriginGranted
	// KeyOriginDevice marks a twofold key, held in device custody.
	KeyOriginDevice
)

func (o KeyOrigin) String() string {
	switch o {
	case KeyOriginCreated:
		return "created"
	case KeyOriginGranted:
		return "granted"
	case KeyOriginDevice:
		return "device"
	default:
		return "unknown"
	}
}

// EncryptedDocumentKey is the tagged key carried in a transfer. Exactly one
// of the two forms is set.
type EncryptedDocumentKey struct {
	Onefold OnefoldEncryptedKey `cbor:"1,keyasint,omitempty"`
	Twofold TwofoldEncryptedKey `cbor:"2,keyasint,omitempty"`
}

// OnefoldKey wraps a onefold key into the tagged form.
func OnefoldKey(k OnefoldEncryptedKey) EncryptedDocumentKey {
	return EncryptedDocumentKey{Onefold: k}
}

// TwofoldKey wraps a twofold key into the tagged form.
func TwofoldKey(k TwofoldEncryptedKey) EncryptedDocumentKey {
	return EncryptedDocumentKey{Twofold: k}
}

// Kind reports the custody form of k.
func (k EncryptedDocumentKey) Kind() KeyKind {
	switch {
	case len(k.Onefold) > 0 && len(k.Twofold) == 0:
		return KeyKindOnefold
	case len(k.Twofold) > 0 && len(k.Onefold) == 0:
		return KeyKindTwofold
	default:
		return KeyKindUnknown
	}
}

// Validate rejects records that hold neither or both forms.
func (k EncryptedDocumentKey) Validate() error {
	if k.Kind() == KeyKindUnknown {
		return ErrMalformedKey
	}
	return nil
}

// Data returns the raw sealed bytes regardless of form.
func (k EncryptedDocumentKey) Data() []byte {
	if k.Kind() == KeyKindTwofold {
		return k.Twofold
	}
	return k.Onefold
}

// StoredKey is the single live custody record a side keeps for a document.
// SharedKeyID is the fingerprint of the SharedKey a onefold key was sealed
// under, so stale records are recognized without a decryption attempt.
type StoredKey struct {
	Key         EncryptedDocumentKey
	Origin      KeyOrigin
	SharedKeyID string
}

// UsableWith reports whether the record is a onefold key sealed under the
// SharedKey with the given fingerprint.
func (k StoredKey) UsableWith(fingerprint string) bool {
	return k.Key.Kind() == KeyKindOnefold && fingerprint != "" && k.SharedKeyID == fingerprint
}
