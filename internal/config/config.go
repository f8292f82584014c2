// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// terminal, the device and the operator CLI. It is populated by merging
// explicit overrides, environment variables, command-line flags, an optional
// JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: who operates the terminal, the
	// shared key, the device passphrase and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the document store DSN and the device keychain path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and TLS material of the terminal.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound endpoints: the terminal as seen by the
	// device, and the operator API as seen by enclavectl.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds heartbeat and advertisement timing.
	Session Session `envPrefix:"SESSION_"`

	// Transfer holds chunking limits.
	Transfer Transfer `envPrefix:"TRANSFER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// Practitioner is recorded as the creator of documents added on the
	// terminal.
	// Env: APP_PRACTITIONER
	Practitioner string `env:"PRACTITIONER"`

	// SharedKey is the base64 SharedKey. When set the terminal starts with
	// it installed; otherwise the operator supplies it at runtime.
	// Env: APP_SHARED_KEY
	SharedKey string `env:"SHARED_KEY"`

	// Passphrase protects the device key inside the keychain.
	// Env: APP_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile redirects logs to a file. The device uses it while the consent
	// prompt owns the terminal.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is reported by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`

	// Keychain holds the device secrets file settings.
	Keychain Keychain `envPrefix:"KEYCHAIN_"`
}

// DB holds connection settings for the document store.
type DB struct {
	// DSN is either an SQLite file path or a PostgreSQL URL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Keychain holds the location of the device keychain.
type Keychain struct {
	// Path is the bbolt file holding the device identity and key.
	// Env: STORAGE_KEYCHAIN_PATH
	Path string `env:"PATH"`
}

// Server holds network, TLS and timeout settings of the terminal.
type Server struct {
	// HTTPAddress is where the operator API listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is where devices connect.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// TLSCertFile and TLSKeyFile hold the PEM certificate the device pins.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`

	// RequestTimeout bounds a single operator API request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound endpoints.
type Adapter struct {
	// TerminalAddress is the terminal gRPC endpoint, host:port.
	// Env: ADAPTER_TERMINAL_ADDRESS
	TerminalAddress string `env:"TERMINAL_ADDRESS"`

	// TLSCAFile is the pinned terminal certificate (PEM). Empty disables TLS.
	// Env: ADAPTER_TLS_CA_FILE
	TLSCAFile string `env:"TLS_CA_FILE"`

	// ServerName overrides the name checked against the terminal
	// certificate.
	// Env: ADAPTER_SERVER_NAME
	ServerName string `env:"SERVER_NAME"`

	// OperatorAddress is the base URL of the terminal operator API.
	// Env: ADAPTER_OPERATOR_ADDRESS
	OperatorAddress string `env:"OPERATOR_ADDRESS"`

	// RequestTimeout bounds a single unary call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds liveness timing.
type Session struct {
	// HeartbeatInterval is how often the device sends a heartbeat.
	// Env: SESSION_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// HeartbeatTimeout is how long the terminal waits for a heartbeat before
	// declaring the session lost.
	// Env: SESSION_HEARTBEAT_TIMEOUT
	HeartbeatTimeout time.Duration `env:"HEARTBEAT_TIMEOUT"`

	// AdvertiseTimeout is how long the terminal waits for the device
	// catalog before pushing unadvertised documents.
	// Env: SESSION_ADVERTISE_TIMEOUT
	AdvertiseTimeout time.Duration `env:"ADVERTISE_TIMEOUT"`
}

// Transfer holds chunking limits.
type Transfer struct {
	// ChunkSize is the body chunk size used when sending and storing.
	// Env: TRANSFER_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`

	// MaxDocumentSize bounds an incoming encrypted body.
	// Env: TRANSFER_MAX_DOCUMENT_SIZE
	MaxDocumentSize int64 `env:"MAX_DOCUMENT_SIZE"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// ReconnectInterval is the initial delay before the device redials.
	// Env: WORKERS_RECONNECT_INTERVAL
	ReconnectInterval time.Duration `env:"RECONNECT_INTERVAL"`

	// MaxReconnectInterval caps the reconnect backoff.
	// Env: WORKERS_MAX_RECONNECT_INTERVAL
	MaxReconnectInterval time.Duration `env:"MAX_RECONNECT_INTERVAL"`
}

// Sources selects where configuration is read from besides the environment,
// the JSON file and the defaults.
type Sources struct {
	// Args are command-line arguments parsed with the standard flag set.
	// Nil skips flag parsing, which is what cobra binaries want.
	Args []string

	// Overrides take precedence over every other source.
	Overrides *StructuredConfig
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (first non-zero value wins):
//  1. Overrides
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//  5. Defaults
func GetStructuredConfig(src Sources) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(src.Overrides).
		withEnv().
		withFlags(src.Args).
		withJSON().
		withDefaults().
		build()
}
