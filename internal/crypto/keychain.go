// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

var deviceKeyAD = []byte("health-enclave/device-key/v1")

// KeyProtector derives a key-encryption key from a passphrase with Argon2id
// and uses it to protect the DeviceKey at rest in the keychain.
type KeyProtector struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyProtector uses the OWASP recommended Argon2id parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewKeyProtector() *KeyProtector {
	return &KeyProtector{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

func (p *KeyProtector) kek(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.argonTime, p.argonMemory, p.argonThreads, KeySize)
}

// Protect seals key under a passphrase-derived KEK.
// Output layout: salt(16) || Seal(key).
func (p *KeyProtector) Protect(key DeviceKey, passphrase string) ([]byte, error) {
	salt, err := RandomBytes(saltSize)
	if err != nil {
		return nil, err
	}

	kek := p.kek(passphrase, salt)
	defer memguard.WipeBytes(kek)
	defer memguard.WipeBytes(key[:])

	sealed, err := Seal(key[:], kek, deviceKeyAD)
	if err != nil {
		return nil, fmt.Errorf("error protecting device key: %w", err)
	}
	return append(salt, sealed...), nil
}

// Recover reverses Protect. A wrong passphrase yields
// ErrAuthenticationFailure.
func (p *KeyProtector) Recover(blob []byte, passphrase string) (DeviceKey, error) {
	var key DeviceKey
	if len(blob) <= saltSize {
		return key, fmt.Errorf("%w: protected key too short", ErrAuthenticationFailure)
	}

	kek := p.kek(passphrase, blob[:saltSize])
	defer memguard.WipeBytes(kek)

	raw, err := Open(blob[saltSize:], kek, deviceKeyAD)
	if err != nil {
		return key, err
	}
	defer memguard.WipeBytes(raw)

	if len(raw) != KeySize {
		return key, ErrAuthenticationFailure
	}
	copy(key[:], raw)
	return key, nil
}
