// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/handler"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/session"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	h, err := handler.NewHandlers(
		&service.TerminalServices{},
		session.NewManager(time.Second),
		&config.TerminalConfig{Server: cfg},
		logger.Nop(),
	)
	require.NoError(t, err)
	return h
}

// ── NewServer ───────────────────────────────────────────────────────────────

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_TLSConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Server
	}{
		{
			name: "certificate without key",
			cfg:  config.Server{GRPCAddress: ":0", TLSCertFile: filepath.Join(dir, "cert.pem")},
		},
		{
			name: "key without certificate",
			cfg:  config.Server{GRPCAddress: ":0", TLSKeyFile: filepath.Join(dir, "key.pem")},
		},
		{
			name: "missing files",
			cfg: config.Server{
				GRPCAddress: ":0",
				TLSCertFile: filepath.Join(dir, "cert.pem"),
				TLSKeyFile:  filepath.Join(dir, "key.pem"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServer(newTestHandlers(t, tt.cfg), tt.cfg, logger.Nop())
			require.ErrorIs(t, err, ErrInvalidTLSConfig)
		})
	}
}

// ── RunServer ───────────────────────────────────────────────────────────────

func TestRunServer_StopsWithContext(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	cfg := config.Server{GRPCAddress: busy.Addr().String()}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer(context.Background()) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not report the listen failure")
	}
}
