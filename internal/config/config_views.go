// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// TerminalConfig is the configuration view of the terminal binary.
type TerminalConfig struct {
	App      App
	Server   Server
	Storage  Storage
	Session  Session
	Transfer Transfer
}

// DeviceConfig is the configuration view of the device binary.
type DeviceConfig struct {
	App      App
	Adapter  Adapter
	Storage  Storage
	Session  Session
	Transfer Transfer
	Workers  Workers
}

// OperatorConfig is the configuration view of enclavectl.
type OperatorConfig struct {
	App     App
	Adapter Adapter
}

// GetTerminalConfig builds and validates the terminal view of the merged
// structured configuration.
func GetTerminalConfig(src Sources) (*TerminalConfig, error) {
	cfg, err := GetStructuredConfig(src)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultTerminalDSN
	}

	terminalCfg := &TerminalConfig{
		App:      cfg.App,
		Server:   cfg.Server,
		Storage:  cfg.Storage,
		Session:  cfg.Session,
		Transfer: cfg.Transfer,
	}

	return terminalCfg, terminalCfg.validate()
}

// GetDeviceConfig builds and validates the device view.
func GetDeviceConfig(src Sources) (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig(src)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDeviceDSN
	}

	deviceCfg := &DeviceConfig{
		App:      cfg.App,
		Adapter:  cfg.Adapter,
		Storage:  cfg.Storage,
		Session:  cfg.Session,
		Transfer: cfg.Transfer,
		Workers:  cfg.Workers,
	}

	return deviceCfg, deviceCfg.validate()
}

// GetDeviceLocalConfig builds the device view for commands that never dial
// the terminal. Only the storage settings are validated.
func GetDeviceLocalConfig(src Sources) (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig(src)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDeviceDSN
	}

	deviceCfg := &DeviceConfig{
		App:      cfg.App,
		Adapter:  cfg.Adapter,
		Storage:  cfg.Storage,
		Session:  cfg.Session,
		Transfer: cfg.Transfer,
		Workers:  cfg.Workers,
	}

	return deviceCfg, deviceCfg.validateLocal()
}

// GetOperatorConfig builds and validates the enclavectl view.
func GetOperatorConfig(src Sources) (*OperatorConfig, error) {
	cfg, err := GetStructuredConfig(src)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	operatorCfg := &OperatorConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
	}

	return operatorCfg, operatorCfg.validate()
}
