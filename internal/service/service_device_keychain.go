// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

type deviceKeychainService struct {
	secrets   store.SecretStorage
	protector *crypto.KeyProtector

	logger *logger.Logger
}

func NewDeviceKeychainService(secrets store.SecretStorage, logger *logger.Logger) DeviceKeychainService {
	return &deviceKeychainService{
		secrets:   secrets,
		protector: crypto.NewKeyProtector(),
		logger:    logger,
	}
}

func (s *deviceKeychainService) Init(passphrase string, force bool) (string, models.DeviceIdentity, error) {
	if _, err := s.secrets.Identity(); err == nil && !force {
		return "", models.DeviceIdentity{}, ErrAlreadyInitialized
	} else if err != nil && !errors.Is(err, store.ErrKeychainNotInitialized) {
		return "", models.DeviceIdentity{}, fmt.Errorf("error reading keychain: %w", err)
	}

	mnemonic, err := crypto.NewMnemonic()
	if err != nil {
		return "", models.DeviceIdentity{}, err
	}
	identity, err := crypto.NewDeviceIdentity()
	if err != nil {
		return "", models.DeviceIdentity{}, err
	}

	if err = s.storeKey(mnemonic, passphrase); err != nil {
		return "", models.DeviceIdentity{}, err
	}
	if err = s.secrets.StoreIdentity(identity); err != nil {
		return "", models.DeviceIdentity{}, fmt.Errorf("error storing identity: %w", err)
	}

	s.logger.Info().Str("func", "deviceKeychainService.Init").Str("identity", identity.Short()).Msg("device initialized")
	return mnemonic, identity, nil
}

// Restore keeps an existing identity so that the terminal recognizes the
// device again; a blank keychain gets a fresh one.
func (s *deviceKeychainService) Restore(mnemonic, passphrase string) (models.DeviceIdentity, error) {
	identity, err := s.secrets.Identity()
	switch {
	case errors.Is(err, store.ErrKeychainNotInitialized):
		if identity, err = crypto.NewDeviceIdentity(); err != nil {
			return models.DeviceIdentity{}, err
		}
		if err = s.secrets.StoreIdentity(identity); err != nil {
			return models.DeviceIdentity{}, fmt.Errorf("error storing identity: %w", err)
		}
	case err != nil:
		return models.DeviceIdentity{}, fmt.Errorf("error reading keychain: %w", err)
	}

	if err = s.storeKey(mnemonic, passphrase); err != nil {
		return models.DeviceIdentity{}, err
	}

	s.logger.Info().Str("func", "deviceKeychainService.Restore").Str("identity", identity.Short()).Msg("device key restored")
	return identity, nil
}

func (s *deviceKeychainService) Unlock(passphrase string) (models.DeviceIdentity, *crypto.DeviceKeyHolder, error) {
	identity, err := s.secrets.Identity()
	if err != nil {
		return models.DeviceIdentity{}, nil, err
	}
	blob, err := s.secrets.DeviceKey()
	if err != nil {
		return models.DeviceIdentity{}, nil, err
	}

	key, err := s.protector.Recover(blob, passphrase)
	if err != nil {
		return models.DeviceIdentity{}, nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}

	// the holder wipes key
	return identity, crypto.NewDeviceKeyHolder(key), nil
}

func (s *deviceKeychainService) storeKey(mnemonic, passphrase string) error {
	key, err := crypto.DeviceKeyFromMnemonic(mnemonic)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(key[:])

	blob, err := s.protector.Protect(key, passphrase)
	if err != nil {
		return err
	}
	if err = s.secrets.StoreDeviceKey(blob); err != nil {
		return fmt.Errorf("error storing device key: %w", err)
	}
	return nil
}
