// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"database/sql"
	"net"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/health-enclave/internal/adapter"
	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/handler"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

// enclave is a terminal serving a device over bufconn and an operator over
// httptest, each with its own SQLite store.
type enclave struct {
	operator    adapter.OperatorAdapter
	device      service.DeviceDocumentsService
	terminalDSN string
}

func startEnclave(t *testing.T) *enclave {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	log := logger.Nop()
	dir := t.TempDir()
	transferCfg := config.Transfer{ChunkSize: 4, MaxDocumentSize: 1 << 20}

	// terminal
	terminalCfg := &config.TerminalConfig{
		App:      config.App{Practitioner: "Dr. X"},
		Server:   config.Server{HTTPAddress: "bufnet", GRPCAddress: "bufnet"},
		Session:  config.Session{HeartbeatTimeout: 2 * time.Second, AdvertiseTimeout: 100 * time.Millisecond},
		Transfer: transferCfg,
	}
	terminalDSN := filepath.Join(dir, "terminal.db")

	terminalStore, err := store.NewStorages(ctx, terminalDSN, transferCfg.ChunkSize, log)
	require.NoError(t, err)
	services, err := service.NewTerminalServices(terminalStore, crypto.NewSharedKeyHolder(), terminalCfg, models.AppBuildInfo{Version: "test"}, log)
	require.NoError(t, err)

	sessions := session.NewManager(terminalCfg.Session.HeartbeatTimeout)
	go func() { _ = services.DocumentsService.Run(ctx, sessions.Events()) }()

	handlers, err := handler.NewHandlers(services, sessions, terminalCfg, log)
	require.NoError(t, err)

	grpcSrv, err := newGRPCServer(handlers.GRPC, terminalCfg.Server, log)
	require.NoError(t, err)
	lis := bufconn.Listen(1 << 20)
	go func() { _ = grpcSrv.server.Serve(lis) }()

	httpSrv := httptest.NewServer(handlers.HTTP.Init())

	// operator
	operator, err := adapter.NewHTTPOperatorAdapter(config.Adapter{OperatorAddress: httpSrv.URL, RequestTimeout: 10 * time.Second}, log)
	require.NoError(t, err)

	// device
	mnemonic, err := crypto.NewMnemonic()
	require.NoError(t, err)
	deviceKey, err := crypto.DeviceKeyFromMnemonic(mnemonic)
	require.NoError(t, err)
	identity, err := crypto.NewDeviceIdentity()
	require.NoError(t, err)

	deviceStore, err := store.NewStorages(ctx, filepath.Join(dir, "device.db"), 0, log)
	require.NoError(t, err)

	terminal, err := adapter.NewGRPCTerminalAdapter(
		config.Adapter{TerminalAddress: "passthrough:///bufnet", RequestTimeout: 5 * time.Second},
		transferCfg, identity, log,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	deviceCfg := &config.DeviceConfig{Session: config.Session{HeartbeatInterval: 50 * time.Millisecond}, Transfer: transferCfg}
	device := service.NewDeviceDocumentsService(deviceStore.Documents(identity), crypto.NewDeviceKeyHolder(deviceKey), terminal, deviceCfg, log)

	synced := make(chan struct{})
	go func() {
		defer close(synced)
		_ = device.Sync(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-synced
		sessions.Shutdown()
		grpcSrv.server.Stop()
		httpSrv.Close()
		_ = terminal.Close()
		_ = deviceStore.Close()
		_ = terminalStore.Close()
	})

	require.Eventually(t, func() bool {
		info, err := operator.Session(ctx)
		return err == nil && info.State == session.StateActive.String() && device.Connected()
	}, 5*time.Second, 20*time.Millisecond)

	return &enclave{operator: operator, device: device, terminalDSN: terminalDSN}
}

// addDocument adds a document and waits until the device holds it and the
// terminal kept only the twofold copy.
func (e *enclave) addDocument(t *testing.T, name string, body []byte) models.DocumentMetadata {
	t.Helper()
	ctx := context.Background()

	md, err := e.operator.AddDocument(ctx, name, body)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		onDevice, err := e.device.ListDocuments(ctx)
		if err != nil || !containsDocument(onDevice, md.ID) {
			return false
		}
		summaries, err := e.operator.ListDocuments(ctx)
		if err != nil {
			return false
		}
		for _, s := range summaries {
			if s.ID == md.ID {
				return s.Stored && !s.Readable
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)

	return md
}

func containsDocument(list []models.DocumentMetadata, id models.DocumentIdentifier) bool {
	for _, md := range list {
		if md.ID == id {
			return true
		}
	}
	return false
}

// answer takes the next access request on the device and grants or denies it.
func (e *enclave) answer(t *testing.T, grant bool) <-chan models.AccessRequest {
	t.Helper()

	answered := make(chan models.AccessRequest, 1)
	go func() {
		defer close(answered)
		select {
		case req := <-e.device.AccessRequests():
			var err error
			if grant {
				err = e.device.GrantAccess(context.Background(), req.Metadata.ID)
			} else {
				err = e.device.DenyAccess(context.Background(), req.Metadata.ID)
			}
			if assert.NoError(t, err) {
				answered <- req
			}
		case <-time.After(5 * time.Second):
			t.Error("no access request reached the device")
		}
	}()
	return answered
}

// ── scenarios ────────────────────────────────────────────────────────────────

func TestEnclave_AddGrantRetrieve(t *testing.T) {
	e := startEnclave(t)
	ctx := context.Background()

	_, encoded, err := crypto.NewSharedKey()
	require.NoError(t, err)
	_, err = e.operator.SetSharedKey(ctx, encoded)
	require.NoError(t, err)

	md := e.addDocument(t, "report.pdf", []byte("HELLO"))
	assert.Equal(t, "Dr. X", md.CreatedBy)

	answered := e.answer(t, true)
	retrieval, err := e.operator.GetDocument(ctx, md.ID, 5*time.Second)
	require.NoError(t, err)

	req, ok := <-answered
	require.True(t, ok)
	assert.Equal(t, "report.pdf", req.Metadata.Name)

	require.Equal(t, models.RetrievalReady, retrieval.Status)
	assert.Equal(t, []byte("HELLO"), retrieval.Body)
	assert.Equal(t, "report.pdf", retrieval.Metadata.Name)
	assert.Equal(t, "Dr. X", retrieval.Metadata.CreatedBy)
	assert.True(t, md.CreatedAt.Equal(retrieval.Metadata.CreatedAt))

	// the granted key stays usable for the rest of the run
	again, err := e.operator.GetDocument(ctx, md.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO"), again.Body)

	// metadata is bound to the key: a renamed record no longer opens
	db, err := sql.Open("sqlite3", e.terminalDSN+"?_busy_timeout=5000")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.ExecContext(ctx, `UPDATE documents SET name = ? WHERE id = ?`, "report2.pdf", md.ID.String())
	require.NoError(t, err)

	_, err = e.operator.GetDocument(ctx, md.ID, 0)
	require.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
}

func TestEnclave_DeniedAccess(t *testing.T) {
	e := startEnclave(t)
	ctx := context.Background()

	_, encoded, err := crypto.NewSharedKey()
	require.NoError(t, err)
	_, err = e.operator.SetSharedKey(ctx, encoded)
	require.NoError(t, err)

	md := e.addDocument(t, "blood test", []byte("Hb 14.1"))

	answered := e.answer(t, false)
	_, err = e.operator.GetDocument(ctx, md.ID, 5*time.Second)
	require.ErrorIs(t, err, adapter.ErrForbidden)
	<-answered

	// a denial is reported once; the next request asks the device again
	retrieval, err := e.operator.GetDocument(ctx, md.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, models.RetrievalPending, retrieval.Status)
}

func TestEnclave_WithoutSharedKey(t *testing.T) {
	e := startEnclave(t)

	_, err := e.operator.AddDocument(context.Background(), "report.pdf", []byte("HELLO"))

	require.ErrorIs(t, err, adapter.ErrPreconditionFailed)
}

func TestEnclave_InvalidDocument(t *testing.T) {
	e := startEnclave(t)

	_, err := e.operator.AddDocument(context.Background(), "report\x00.pdf", []byte("HELLO"))

	require.ErrorIs(t, err, adapter.ErrBadRequest)
}
