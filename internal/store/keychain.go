// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/health-enclave/models"
)

const (
	secretsBucket = "secrets"

	identityEntry  = "identity"
	deviceKeyEntry = "device_key"
)

// Keychain is a bbolt-backed [SecretStorage] holding the device identity
// and the protected DeviceKey.
type Keychain struct {
	db *bolt.DB
}

// OpenKeychain opens (or creates) the keychain file at path.
func OpenKeychain(path string) (*Keychain, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("keychain: creating directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("keychain: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(secretsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("keychain: creating bucket: %w", err)
	}

	return &Keychain{db: db}, nil
}

func (k *Keychain) get(entry string) ([]byte, error) {
	var value []byte
	err := k.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(secretsBucket)).Get([]byte(entry))
		if raw == nil {
			return ErrKeychainNotInitialized
		}
		// bbolt values are only valid for the life of the transaction.
		value = append([]byte(nil), raw...)
		return nil
	})
	return value, err
}

func (k *Keychain) put(entry string, value []byte) error {
	return k.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(secretsBucket)).Put([]byte(entry), value)
	})
}

// Identity returns the stored device identity.
func (k *Keychain) Identity() (models.DeviceIdentity, error) {
	raw, err := k.get(identityEntry)
	if err != nil {
		return models.DeviceIdentity{}, err
	}

	var identity models.DeviceIdentity
	if len(raw) != len(identity) {
		return models.DeviceIdentity{}, models.ErrMalformedIdentity
	}
	copy(identity[:], raw)
	return identity, nil
}

// StoreIdentity persists identity, replacing any previous one.
func (k *Keychain) StoreIdentity(identity models.DeviceIdentity) error {
	return k.put(identityEntry, identity[:])
}

// DeviceKey returns the protected DeviceKey blob.
func (k *Keychain) DeviceKey() ([]byte, error) {
	return k.get(deviceKeyEntry)
}

// StoreDeviceKey persists the protected DeviceKey blob.
func (k *Keychain) StoreDeviceKey(key []byte) error {
	return k.put(deviceKeyEntry, key)
}

// Close releases the file lock.
func (k *Keychain) Close() error {
	return k.db.Close()
}
