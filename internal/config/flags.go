// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the terminal command line.
//
// Flags:
//
//	-a operator API address in format [host]:[port]
//	-grpc-address device endpoint address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-practitioner name recorded as document creator
//	-shared-key base64 shared key
//	-tls-cert / -tls-key PEM certificate and key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-heartbeat-timeout session liveness timeout (e.g., "2s")
//	-advertise-timeout catalog advertisement timeout (e.g., "1s")
//	-chunk-size transfer chunk size in bytes
//	-max-document-size largest accepted encrypted body in bytes
//	-log-level zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var practitioner, sharedKey string
	var tlsCert, tlsKey string
	var requestTimeout, heartbeatTimeout, advertiseTimeout time.Duration
	var chunkSize int
	var maxDocumentSize int64
	var logLevel string

	fs := flag.NewFlagSet("health-enclave", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Operator API net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Device endpoint net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&practitioner, "practitioner", "", "Practitioner name")
	fs.StringVar(&sharedKey, "shared-key", "", "Base64 shared key")
	fs.StringVar(&tlsCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&tlsKey, "tls-key", "", "TLS key file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&heartbeatTimeout, "heartbeat-timeout", 0, "Heartbeat timeout (e.g., 2s)")
	fs.DurationVar(&advertiseTimeout, "advertise-timeout", 0, "Advertise timeout (e.g., 1s)")
	fs.IntVar(&chunkSize, "chunk-size", 0, "Transfer chunk size in bytes")
	fs.Int64Var(&maxDocumentSize, "max-document-size", 0, "Largest accepted document in bytes")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Practitioner: practitioner,
			SharedKey:    sharedKey,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			TLSCertFile:    tlsCert,
			TLSKeyFile:     tlsKey,
			RequestTimeout: requestTimeout,
		},
		Session: Session{
			HeartbeatTimeout: heartbeatTimeout,
			AdvertiseTimeout: advertiseTimeout,
		},
		Transfer: Transfer{
			ChunkSize:       chunkSize,
			MaxDocumentSize: maxDocumentSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty (all interfaces), and returns an error if the format or
// values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
