// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied after every other source.
const (
	DefaultGRPCAddress          = ":42242"
	DefaultHTTPAddress          = "127.0.0.1:8080"
	DefaultOperatorAddress      = "http://127.0.0.1:8080"
	DefaultTerminalDSN          = "terminal.db"
	DefaultDeviceDSN            = "device.db"
	DefaultKeychainPath         = "device.keychain"
	DefaultPractitioner         = "Practitioner"
	DefaultLogLevel             = "info"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultHeartbeatInterval    = time.Second
	DefaultHeartbeatTimeout     = 2 * time.Second
	DefaultAdvertiseTimeout     = time.Second
	DefaultChunkSize            = 16 * 1024
	DefaultMaxDocumentSize      = 64 << 20
	DefaultReconnectInterval    = time.Second
	DefaultMaxReconnectInterval = 30 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Practitioner: DefaultPractitioner,
			LogLevel:     DefaultLogLevel,
		},
		Storage: Storage{
			Keychain: Keychain{Path: DefaultKeychainPath},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			OperatorAddress: DefaultOperatorAddress,
			RequestTimeout:  DefaultRequestTimeout,
		},
		Session: Session{
			HeartbeatInterval: DefaultHeartbeatInterval,
			HeartbeatTimeout:  DefaultHeartbeatTimeout,
			AdvertiseTimeout:  DefaultAdvertiseTimeout,
		},
		Transfer: Transfer{
			ChunkSize:       DefaultChunkSize,
			MaxDocumentSize: DefaultMaxDocumentSize,
		},
		Workers: Workers{
			ReconnectInterval:    DefaultReconnectInterval,
			MaxReconnectInterval: DefaultMaxReconnectInterval,
		},
	}
}
