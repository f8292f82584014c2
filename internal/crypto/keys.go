// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/awnumar/memguard"
	"github.com/tyler-smith/go-bip39"

	"github.com/MKhiriev/health-enclave/models"
)

const (
	// mnemonicEntropyBits yields a 24-word phrase.
	mnemonicEntropyBits = 256
	// fingerprintSize is the number of SHA-256 bytes kept as key fingerprint.
	fingerprintSize = 8
)

// DeviceKey is the device-held key that turns onefold keys into twofold ones.
type DeviceKey [KeySize]byte

// SharedKey is the per-run terminal key that seals document keys.
type SharedKey [KeySize]byte

// ParseSharedKey decodes the base64 form the operator transcribes.
func ParseSharedKey(encoded string) (SharedKey, error) {
	var key SharedKey

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidSharedKey, err)
	}
	defer memguard.WipeBytes(raw)

	if len(raw) != KeySize {
		return key, fmt.Errorf("%w: got %d bytes", ErrInvalidSharedKey, len(raw))
	}

	copy(key[:], raw)
	return key, nil
}

// NewSharedKey generates a random SharedKey and returns it along with its
// base64 transcription.
func NewSharedKey() (SharedKey, string, error) {
	var key SharedKey

	raw, err := RandomBytes(KeySize)
	if err != nil {
		return key, "", err
	}
	defer memguard.WipeBytes(raw)

	copy(key[:], raw)
	return key, base64.StdEncoding.EncodeToString(raw), nil
}

// Fingerprint identifies the key without revealing it.
func (k SharedKey) Fingerprint() string {
	return hex.EncodeToString(Hash(k[:])[:fingerprintSize])
}

// NewMnemonic returns a fresh 24-word recovery phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("error generating mnemonic entropy: %w", err)
	}
	defer memguard.WipeBytes(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("error generating mnemonic: %w", err)
	}
	return mnemonic, nil
}

// DeviceKeyFromMnemonic derives the device key as the first 32 bytes of the
// BIP-39 seed with an empty passphrase.
func DeviceKeyFromMnemonic(mnemonic string) (DeviceKey, error) {
	var key DeviceKey

	normalized := strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
	seed, err := bip39.NewSeedWithErrorChecking(normalized, "")
	if err != nil {
		return key, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	defer memguard.WipeBytes(seed)

	copy(key[:], seed[:KeySize])
	return key, nil
}

// NewDeviceIdentity generates a random device identity.
func NewDeviceIdentity() (models.DeviceIdentity, error) {
	var id models.DeviceIdentity

	raw, err := RandomBytes(models.DeviceIdentitySize)
	if err != nil {
		return id, err
	}

	copy(id[:], raw)
	return id, nil
}

// SharedKeyHolder keeps the terminal's SharedKey in a memguard enclave for the
// lifetime of the process. It is never persisted.
type SharedKeyHolder struct {
	mu          sync.RWMutex
	enclave     *memguard.Enclave
	fingerprint string
}

// NewSharedKeyHolder returns an empty holder.
func NewSharedKeyHolder() *SharedKeyHolder {
	return &SharedKeyHolder{}
}

// Set replaces the held key. The caller's copy is wiped.
func (h *SharedKeyHolder) Set(key SharedKey) string {
	fingerprint := key.Fingerprint()
	enclave := memguard.NewEnclave(key[:])

	h.mu.Lock()
	h.enclave = enclave
	h.fingerprint = fingerprint
	h.mu.Unlock()

	return fingerprint
}

// SetEncoded parses the base64 transcription and stores it.
func (h *SharedKeyHolder) SetEncoded(encoded string) (string, error) {
	key, err := ParseSharedKey(encoded)
	if err != nil {
		return "", err
	}
	return h.Set(key), nil
}

// Fingerprint returns the fingerprint of the held key, or "" when unset.
func (h *SharedKeyHolder) Fingerprint() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.fingerprint
}

// Key opens the enclave and returns a copy of the key together with its
// fingerprint. Callers wipe the copy when done.
func (h *SharedKeyHolder) Key() (SharedKey, string, error) {
	var key SharedKey

	h.mu.RLock()
	enclave, fingerprint := h.enclave, h.fingerprint
	h.mu.RUnlock()

	if enclave == nil {
		return key, "", ErrNoSharedKey
	}

	buf, err := enclave.Open()
	if err != nil {
		return key, "", fmt.Errorf("error opening shared key enclave: %w", err)
	}
	defer buf.Destroy()

	copy(key[:], buf.Bytes())
	return key, fingerprint, nil
}

// DeviceKeyHolder keeps the DeviceKey sealed in a memguard enclave while the
// device runs.
type DeviceKeyHolder struct {
	enclave *memguard.Enclave
}

// NewDeviceKeyHolder seals key. The caller's copy is wiped.
func NewDeviceKeyHolder(key DeviceKey) *DeviceKeyHolder {
	return &DeviceKeyHolder{enclave: memguard.NewEnclave(key[:])}
}

// Key returns a copy of the DeviceKey. Callers wipe the copy when done.
func (h *DeviceKeyHolder) Key() (DeviceKey, error) {
	var key DeviceKey

	buf, err := h.enclave.Open()
	if err != nil {
		return key, fmt.Errorf("error opening device key enclave: %w", err)
	}
	defer buf.Destroy()

	copy(key[:], buf.Bytes())
	return key, nil
}
