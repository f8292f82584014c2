// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/rpc"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/models"
)

// fakeTerminal records what the adapter sends and replays canned answers.
type fakeTerminal struct {
	rpc.UnimplementedHealthEnclaveServer

	mu         sync.Mutex
	identities []string
	advertised []models.DocumentMetadata
	pushed     []models.DocumentUnit
	keys       []models.KeyWithIdentifier
	denied     []models.DocumentIdentifier

	rejectKeepAlive bool
	pushExists      bool
	serve           models.DocumentUnit
	missing         []models.DocumentIdentifier
}

func (f *fakeTerminal) record(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.mu.Lock()
	f.identities = append(f.identities, md.Get(rpc.IdentityHeader)...)
	f.mu.Unlock()
}

func (f *fakeTerminal) KeepAlive(stream rpc.KeepAliveServer) error {
	f.record(stream.Context())
	if _, err := stream.Recv(); err != nil {
		return err
	}
	if f.rejectKeepAlive {
		return status.Error(codes.AlreadyExists, "another device is connected")
	}
	if err := stream.Send(&models.Heartbeat{}); err != nil {
		return err
	}
	// end the session after two more heartbeats
	for range 2 {
		if _, err := stream.Recv(); err != nil {
			return err
		}
	}
	return status.Error(codes.Unavailable, "session lost")
}

func (f *fakeTerminal) AdvertiseDocumentsToTerminal(stream rpc.AdvertiseDocumentsToTerminalServer) error {
	f.record(stream.Context())
	for {
		md, err := stream.Recv()
		if err != nil {
			return stream.SendAndClose(&models.Empty{})
		}
		f.mu.Lock()
		f.advertised = append(f.advertised, *md)
		f.mu.Unlock()
	}
}

func (f *fakeTerminal) MissingDocumentsForDevice(_ *models.Empty, stream rpc.MissingServer) error {
	f.record(stream.Context())
	for _, id := range f.missing {
		if err := stream.Send(&models.IdentifierMessage{ID: id}); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTerminal) TransferDocumentToDevice(in *models.IdentifierMessage, stream rpc.TransferDocumentToDeviceServer) error {
	f.record(stream.Context())
	if in.ID != f.serve.Metadata.ID {
		return status.Error(codes.NotFound, "no such document")
	}
	return transfer.Send(f.serve, 3, func(frame models.DocumentFrame) error {
		return stream.Send(&frame)
	})
}

func (f *fakeTerminal) TransferDocumentToTerminal(stream rpc.TransferDocumentToTerminalServer) error {
	f.record(stream.Context())
	unit, err := transfer.Receive(func() (models.DocumentFrame, error) {
		frame, err := stream.Recv()
		if err != nil {
			return models.DocumentFrame{}, err
		}
		return *frame, nil
	}, 0)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if f.pushExists {
		return status.Error(codes.AlreadyExists, "document exists")
	}
	f.mu.Lock()
	f.pushed = append(f.pushed, unit)
	f.mu.Unlock()
	return stream.SendAndClose(&models.Empty{})
}

func (f *fakeTerminal) TransferOnefoldKey(ctx context.Context, in *models.KeyWithIdentifier) (*models.Empty, error) {
	f.record(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, *in)
	return &models.Empty{}, nil
}

func (f *fakeTerminal) TransferTwofoldKey(ctx context.Context, in *models.KeyWithIdentifier) (*models.Empty, error) {
	f.record(ctx)
	return nil, status.Error(codes.Unauthenticated, "identity mismatch")
}

func (f *fakeTerminal) DenyOnefoldKey(ctx context.Context, in *models.IdentifierMessage) (*models.Empty, error) {
	f.record(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.denied = append(f.denied, in.ID)
	return &models.Empty{}, nil
}

func testIdentity() models.DeviceIdentity {
	var id models.DeviceIdentity
	for i := range id {
		id[i] = byte(i * 7)
	}
	return id
}

func testDocument(body []byte) models.DocumentUnit {
	return models.DocumentUnit{
		Metadata: models.NewDocumentMetadata(testDocumentID, "report.pdf", "Dr. X", time.Now()),
		Key:      models.StoredKey{Key: models.OnefoldKey([]byte("onefold"))},
		Body:     body,
	}
}

func startFakeTerminal(t *testing.T, fake *fakeTerminal) TerminalAdapter {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	rpc.RegisterHealthEnclaveServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	a, err := NewGRPCTerminalAdapter(
		config.Adapter{TerminalAddress: "passthrough:///bufnet", RequestTimeout: 5 * time.Second},
		config.Transfer{ChunkSize: 2, MaxDocumentSize: 1 << 20},
		testIdentity(),
		logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewGRPCTerminalAdapter_Validation(t *testing.T) {
	_, err := NewGRPCTerminalAdapter(config.Adapter{}, config.Transfer{}, testIdentity(), logger.Nop())
	assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)

	_, err = NewGRPCTerminalAdapter(config.Adapter{TerminalAddress: "127.0.0.1:1", TLSCAFile: "/does/not/exist.pem"},
		config.Transfer{}, testIdentity(), logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidTLSConfig)

	garbage := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not a certificate"), 0o600))
	_, err = NewGRPCTerminalAdapter(config.Adapter{TerminalAddress: "127.0.0.1:1", TLSCAFile: garbage},
		config.Transfer{}, testIdentity(), logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidTLSConfig)
}

// ── KeepAlive ────────────────────────────────────────────────────────────────

func TestKeepAlive_AdmittedThenLost(t *testing.T) {
	fake := &fakeTerminal{}
	a := startFakeTerminal(t, fake)

	admitted := false
	err := a.KeepAlive(context.Background(), 10*time.Millisecond, func() { admitted = true })

	assert.True(t, admitted)
	assert.ErrorIs(t, err, session.ErrSessionLost)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.NotEmpty(t, fake.identities)
	assert.Equal(t, testIdentity().Hex(), fake.identities[0])
}

func TestKeepAlive_Rejected(t *testing.T) {
	a := startFakeTerminal(t, &fakeTerminal{rejectKeepAlive: true})

	admitted := false
	err := a.KeepAlive(context.Background(), time.Second, func() { admitted = true })

	assert.False(t, admitted)
	assert.ErrorIs(t, err, session.ErrAlreadyConnected)
}

func TestKeepAlive_ContextCancelled(t *testing.T) {
	a := startFakeTerminal(t, &fakeTerminal{})

	ctx, cancel := context.WithCancel(context.Background())
	err := a.KeepAlive(ctx, time.Hour, cancel)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── catalog and missing streams ──────────────────────────────────────────────

func TestAdvertise(t *testing.T) {
	fake := &fakeTerminal{}
	a := startFakeTerminal(t, fake)

	catalog := []models.DocumentMetadata{testDocument(nil).Metadata}
	require.NoError(t, a.Advertise(context.Background(), catalog))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.advertised, 1)
	assert.True(t, catalog[0].Equal(fake.advertised[0]))
}

func TestWatchMissing(t *testing.T) {
	ids := []models.DocumentIdentifier{testDocumentID, "0190a5d0-7c1e-7b3a-9f00-000000000002"}
	a := startFakeTerminal(t, &fakeTerminal{missing: ids})

	var got []models.DocumentIdentifier
	err := a.WatchMissing(context.Background(), models.MissingDocumentsForDevice, func(id models.DocumentIdentifier) error {
		got = append(got, id)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func TestWatchMissing_CallbackErrorStops(t *testing.T) {
	a := startFakeTerminal(t, &fakeTerminal{missing: []models.DocumentIdentifier{testDocumentID, testDocumentID}})

	calls := 0
	err := a.WatchMissing(context.Background(), models.MissingDocumentsForDevice, func(models.DocumentIdentifier) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}

// ── document transfer ────────────────────────────────────────────────────────

func TestPullDocument(t *testing.T) {
	body := []byte("encrypted body bytes")
	a := startFakeTerminal(t, &fakeTerminal{serve: testDocument(body)})

	unit, err := a.PullDocument(context.Background(), testDocumentID)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(body, unit.Body))
	assert.Equal(t, models.KeyKindOnefold, unit.Key.Key.Kind())

	_, err = a.PullDocument(context.Background(), "0190a5d0-7c1e-7b3a-9f00-00000000ffff")
	assert.ErrorIs(t, err, store.ErrMissingMetadata)
}

func TestPushDocument(t *testing.T) {
	fake := &fakeTerminal{}
	a := startFakeTerminal(t, fake)

	unit := testDocument([]byte("HELLO"))
	require.NoError(t, a.PushDocument(context.Background(), unit))

	fake.mu.Lock()
	require.Len(t, fake.pushed, 1)
	assert.Equal(t, []byte("HELLO"), fake.pushed[0].Body)
	fake.mu.Unlock()

	fake.pushExists = true
	assert.ErrorIs(t, a.PushDocument(context.Background(), unit), store.ErrDocumentExists)
}

// ── unary calls ──────────────────────────────────────────────────────────────

func TestUnaryCalls(t *testing.T) {
	fake := &fakeTerminal{}
	a := startFakeTerminal(t, fake)
	ctx := context.Background()

	key := models.KeyWithIdentifier{ID: testDocumentID, Key: models.OnefoldKey([]byte("k"))}
	require.NoError(t, a.TransferOnefoldKey(ctx, key))
	require.NoError(t, a.DenyOnefoldKey(ctx, testDocumentID))

	assert.ErrorIs(t, a.TransferTwofoldKey(ctx, key), session.ErrInvalidIdentity)
	assert.Equal(t, codes.Unimplemented, status.Code(a.DeleteDocument(ctx, testDocumentID)))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.keys, 1)
	assert.Equal(t, []byte("k"), []byte(fake.keys[0].Key.Onefold))
	assert.Equal(t, []models.DocumentIdentifier{testDocumentID}, fake.denied)
}
