// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		Practitioner string `json:"practitioner"`
		SharedKey    string `json:"shared_key"`
		Passphrase   string `json:"passphrase"`
		LogLevel     string `json:"log_level"`
		LogFile      string `json:"log_file"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Keychain struct {
			Path string `json:"path"`
		} `json:"keychain,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		TLSCertFile    string   `json:"tls_cert_file"`
		TLSKeyFile     string   `json:"tls_key_file"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		TerminalAddress string   `json:"terminal_address"`
		TLSCAFile       string   `json:"tls_ca_file"`
		ServerName      string   `json:"server_name"`
		OperatorAddress string   `json:"operator_address"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Session struct {
		HeartbeatInterval Duration `json:"heartbeat_interval"`
		HeartbeatTimeout  Duration `json:"heartbeat_timeout"`
		AdvertiseTimeout  Duration `json:"advertise_timeout"`
	} `json:"session,omitempty"`

	Transfer struct {
		ChunkSize       int   `json:"chunk_size"`
		MaxDocumentSize int64 `json:"max_document_size"`
	} `json:"transfer,omitempty"`

	Workers struct {
		ReconnectInterval    Duration `json:"reconnect_interval"`
		MaxReconnectInterval Duration `json:"max_reconnect_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Practitioner: jsonCfg.App.Practitioner,
			SharedKey:    jsonCfg.App.SharedKey,
			Passphrase:   jsonCfg.App.Passphrase,
			LogLevel:     jsonCfg.App.LogLevel,
			LogFile:      jsonCfg.App.LogFile,
			Version:      jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Keychain: Keychain{
				Path: jsonCfg.Storage.Keychain.Path,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			TLSCertFile:    jsonCfg.Server.TLSCertFile,
			TLSKeyFile:     jsonCfg.Server.TLSKeyFile,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			TerminalAddress: jsonCfg.Adapter.TerminalAddress,
			TLSCAFile:       jsonCfg.Adapter.TLSCAFile,
			ServerName:      jsonCfg.Adapter.ServerName,
			OperatorAddress: jsonCfg.Adapter.OperatorAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Session: Session{
			HeartbeatInterval: time.Duration(jsonCfg.Session.HeartbeatInterval),
			HeartbeatTimeout:  time.Duration(jsonCfg.Session.HeartbeatTimeout),
			AdvertiseTimeout:  time.Duration(jsonCfg.Session.AdvertiseTimeout),
		},
		Transfer: Transfer{
			ChunkSize:       jsonCfg.Transfer.ChunkSize,
			MaxDocumentSize: jsonCfg.Transfer.MaxDocumentSize,
		},
		Workers: Workers{
			ReconnectInterval:    time.Duration(jsonCfg.Workers.ReconnectInterval),
			MaxReconnectInterval: time.Duration(jsonCfg.Workers.MaxReconnectInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
