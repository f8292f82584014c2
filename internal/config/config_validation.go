// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *TerminalConfig) validate() error {
	if cfg.Server.GRPCAddress == "" || cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	// certificate and key come as a pair
	if (cfg.Server.TLSCertFile == "") != (cfg.Server.TLSKeyFile == "") {
		return fmt.Errorf("%w: tls certificate and key must be set together", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.App.Practitioner) == "" {
		return ErrInvalidAppConfigs
	}

	if err := validateSession(cfg.Session); err != nil {
		return err
	}
	return validateTransfer(cfg.Transfer)
}

func (cfg *DeviceConfig) validate() error {
	if cfg.Adapter.TerminalAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if err := cfg.validateLocal(); err != nil {
		return err
	}

	if cfg.Workers.ReconnectInterval <= 0 || cfg.Workers.MaxReconnectInterval < cfg.Workers.ReconnectInterval {
		return ErrInvalidWorkerConfigs
	}

	if err := validateSession(cfg.Session); err != nil {
		return err
	}
	return validateTransfer(cfg.Transfer)
}

func (cfg *DeviceConfig) validateLocal() error {
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Keychain.Path == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}

func (cfg *OperatorConfig) validate() error {
	if cfg.Adapter.OperatorAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func validateSession(s Session) error {
	if s.HeartbeatInterval <= 0 || s.AdvertiseTimeout <= 0 {
		return ErrInvalidSessionConfigs
	}
	if s.HeartbeatTimeout <= s.HeartbeatInterval {
		return fmt.Errorf("%w: heartbeat timeout %s must exceed interval %s",
			ErrInvalidSessionConfigs, s.HeartbeatTimeout, s.HeartbeatInterval)
	}
	return nil
}

func validateTransfer(t Transfer) error {
	if t.ChunkSize <= 0 || t.MaxDocumentSize < int64(t.ChunkSize) {
		return ErrInvalidTransferConfigs
	}
	return nil
}
