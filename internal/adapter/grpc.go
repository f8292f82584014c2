// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/rpc"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/models"
)

type grpcTerminalAdapter struct {
	conn   *grpc.ClientConn
	client rpc.HealthEnclaveClient

	chunkSize      int
	maxSize        int
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewGRPCTerminalAdapter constructs the gRPC implementation of
// [TerminalAdapter]. The terminal certificate is pinned from
// adapterCfg.TLSCAFile; an empty path dials without TLS. Every call carries
// the hex identity in the deviceidentifier header.
//
// Extra dial options are appended after the defaults (tests pass a bufconn
// dialer here).
func NewGRPCTerminalAdapter(adapterCfg config.Adapter, transferCfg config.Transfer, identity models.DeviceIdentity, log *logger.Logger, opts ...grpc.DialOption) (TerminalAdapter, error) {
	if adapterCfg.TerminalAddress == "" {
		return nil, fmt.Errorf("invalid adapter terminal address: %w", config.ErrInvalidAdapterConfigs)
	}

	creds, err := transportCredentials(adapterCfg)
	if err != nil {
		return nil, err
	}

	hexID := identity.Hex()
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(identityUnaryInterceptor(hexID)),
		grpc.WithChainStreamInterceptor(identityStreamInterceptor(hexID)),
	}, opts...)

	conn, err := grpc.NewClient(adapterCfg.TerminalAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("error creating terminal client: %w", err)
	}

	chunkSize := transferCfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = transfer.DefaultChunkSize
	}

	return &grpcTerminalAdapter{
		conn:           conn,
		client:         rpc.NewHealthEnclaveClient(conn),
		chunkSize:      chunkSize,
		maxSize:        int(transferCfg.MaxDocumentSize),
		requestTimeout: adapterCfg.RequestTimeout,
		logger:         log,
	}, nil
}

func transportCredentials(cfg config.Adapter) (credentials.TransportCredentials, error) {
	if cfg.TLSCAFile == "" {
		return insecure.NewCredentials(), nil
	}

	pem, err := os.ReadFile(cfg.TLSCAFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTLSConfig, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: no certificate in %s", ErrInvalidTLSConfig, cfg.TLSCAFile)
	}

	return credentials.NewTLS(&tls.Config{
		RootCAs:    pool,
		ServerName: cfg.ServerName,
		MinVersion: tls.VersionTLS13,
	}), nil
}

func identityUnaryInterceptor(hexID string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.IdentityHeader, hexID)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

func identityStreamInterceptor(hexID string) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.IdentityHeader, hexID)
		return streamer(ctx, desc, cc, method, opts...)
	}
}

func (a *grpcTerminalAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.requestTimeout)
}

// KeepAlive implements [TerminalAdapter].
func (a *grpcTerminalAdapter) KeepAlive(ctx context.Context, interval time.Duration, onAdmitted func()) error {
	stream, err := a.client.KeepAlive(ctx)
	if err != nil {
		return mapGRPCError(err, session.ErrAlreadyConnected)
	}

	// the first heartbeat carries the admission; its echo confirms it
	if err = stream.Send(&models.Heartbeat{}); err != nil && !errors.Is(err, io.EOF) {
		return mapGRPCError(err, session.ErrAlreadyConnected)
	}
	if _, err = stream.Recv(); err != nil {
		if errors.Is(err, io.EOF) {
			return session.ErrSessionClosed
		}
		return mapGRPCError(err, session.ErrAlreadyConnected)
	}
	a.logger.Info().Str("func", "grpcTerminalAdapter.KeepAlive").Msg("admitted by terminal")
	if onAdmitted != nil {
		onAdmitted()
	}

	ended := make(chan error, 1)
	go func() {
		for {
			if _, err := stream.Recv(); err != nil {
				ended <- err
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = stream.CloseSend()
			return ctx.Err()
		case err = <-ended:
			if errors.Is(err, io.EOF) {
				return session.ErrSessionClosed
			}
			return mapGRPCError(err, session.ErrAlreadyConnected)
		case <-ticker.C:
			// io.EOF means the status is waiting on the receive side
			if err = stream.Send(&models.Heartbeat{}); err != nil && !errors.Is(err, io.EOF) {
				return mapGRPCError(err, session.ErrAlreadyConnected)
			}
		}
	}
}

// Advertise implements [TerminalAdapter].
func (a *grpcTerminalAdapter) Advertise(ctx context.Context, catalog []models.DocumentMetadata) error {
	stream, err := a.client.AdvertiseDocumentsToTerminal(ctx)
	if err != nil {
		return mapGRPCError(err, nil)
	}

	for i := range catalog {
		if err = stream.Send(&catalog[i]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return mapGRPCError(err, nil)
		}
	}

	if _, err = stream.CloseAndRecv(); err != nil {
		return mapGRPCError(err, nil)
	}

	a.logger.Debug().Str("func", "grpcTerminalAdapter.Advertise").Int("documents", len(catalog)).Msg("catalog advertised")
	return nil
}

// WatchMissing implements [TerminalAdapter].
func (a *grpcTerminalAdapter) WatchMissing(ctx context.Context, kind models.MissingKind, fn func(models.DocumentIdentifier) error) error {
	stream, err := a.client.Missing(ctx, kind)
	if err != nil {
		return mapGRPCError(err, nil)
	}

	for {
		msg, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return mapGRPCError(err, nil)
		}
		if err = fn(msg.ID); err != nil {
			return err
		}
	}
}

// PullDocument implements [TerminalAdapter].
func (a *grpcTerminalAdapter) PullDocument(ctx context.Context, id models.DocumentIdentifier) (models.DocumentUnit, error) {
	// abandoning the stream early must release it
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := a.client.TransferDocumentToDevice(ctx, &models.IdentifierMessage{ID: id})
	if err != nil {
		return models.DocumentUnit{}, mapGRPCError(err, nil)
	}

	unit, err := transfer.Receive(func() (models.DocumentFrame, error) {
		frame, err := stream.Recv()
		if err != nil {
			return models.DocumentFrame{}, err
		}
		return *frame, nil
	}, a.maxSize)
	if err != nil {
		a.logger.Err(err).Str("func", "grpcTerminalAdapter.PullDocument").Str("document_id", id.String()).Msg("discarding partial document")
		return models.DocumentUnit{}, mapGRPCError(err, nil)
	}

	if unit.Metadata.ID != id {
		return models.DocumentUnit{}, fmt.Errorf("%w: requested %s, received %s", ErrProtocolViolation, id, unit.Metadata.ID)
	}
	return unit, nil
}

// PushDocument implements [TerminalAdapter].
func (a *grpcTerminalAdapter) PushDocument(ctx context.Context, unit models.DocumentUnit) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := a.client.TransferDocumentToTerminal(ctx)
	if err != nil {
		return mapGRPCError(err, store.ErrDocumentExists)
	}

	err = transfer.Send(unit, a.chunkSize, func(f models.DocumentFrame) error {
		return stream.Send(&f)
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return mapGRPCError(err, store.ErrDocumentExists)
	}

	if _, err = stream.CloseAndRecv(); err != nil {
		return mapGRPCError(err, store.ErrDocumentExists)
	}
	return nil
}

// TransferOnefoldKey implements [TerminalAdapter].
func (a *grpcTerminalAdapter) TransferOnefoldKey(ctx context.Context, key models.KeyWithIdentifier) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	_, err := a.client.TransferOnefoldKey(ctx, &key)
	return mapGRPCError(err, nil)
}

// TransferTwofoldKey implements [TerminalAdapter].
func (a *grpcTerminalAdapter) TransferTwofoldKey(ctx context.Context, key models.KeyWithIdentifier) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	_, err := a.client.TransferTwofoldKey(ctx, &key)
	return mapGRPCError(err, nil)
}

// DenyOnefoldKey implements [TerminalAdapter].
func (a *grpcTerminalAdapter) DenyOnefoldKey(ctx context.Context, id models.DocumentIdentifier) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	_, err := a.client.DenyOnefoldKey(ctx, &models.IdentifierMessage{ID: id})
	return mapGRPCError(err, nil)
}

// DeleteDocument implements [TerminalAdapter].
func (a *grpcTerminalAdapter) DeleteDocument(ctx context.Context, id models.DocumentIdentifier) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	_, err := a.client.DeleteDocument(ctx, &models.IdentifierMessage{ID: id})
	return mapGRPCError(err, nil)
}

// Close implements [TerminalAdapter].
func (a *grpcTerminalAdapter) Close() error {
	return a.conn.Close()
}
