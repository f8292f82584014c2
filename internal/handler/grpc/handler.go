// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the HealthEnclave service on the terminal.
//
// KeepAlive admits the device session; every other call must carry the
// identity of the Active session and is cancelled when that session ends.
// Domain errors are converted to status codes by errors_mapper.go.
package grpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/metrics"
	"github.com/MKhiriev/health-enclave/internal/rpc"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/internal/utils"
	"github.com/MKhiriev/health-enclave/models"
)

var _ rpc.HealthEnclaveServer = (*Handler)(nil)

// Handler is the terminal's gRPC transport handler.
//
// It stores references to the session manager, the document coordinator and
// the structured logger. A handler instance is created once at startup and
// shared by the gRPC server.
type Handler struct {
	sessions  *session.Manager
	documents service.TerminalDocumentsService

	maxDocumentSize int

	logger *logger.Logger
}

// NewHandler constructs a [Handler].
func NewHandler(sessions *session.Manager, documents service.TerminalDocumentsService, transferCfg config.Transfer, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		sessions:        sessions,
		documents:       documents,
		maxDocumentSize: int(transferCfg.MaxDocumentSize),
		logger:          logger,
	}
}

// ended reports the session's end cause once ctx is done, and err otherwise.
func ended(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return toStatus(context.Cause(ctx))
	}
	return toStatus(err)
}

// KeepAlive admits the device, acknowledges the admission by echoing the
// first heartbeat and then keeps the session alive while heartbeats arrive.
func (h *Handler) KeepAlive(stream rpc.KeepAliveServer) error {
	ctx := stream.Context()
	log := logger.FromContext(ctx)

	sess, err := h.sessions.Admit(headerValue(ctx, rpc.IdentityHeader))
	if err != nil {
		metrics.Session("rejected")
		log.Warn().Err(err).Str("func", "Handler.KeepAlive").Msg("admission refused")
		return toStatus(err)
	}

	// the coordinator must know the session before the device sees the ack
	h.documents.SessionStarted(sess.Context(), sess.ID(), sess.Identity())

	if _, err = stream.Recv(); err != nil {
		endSession(sess, err)
		return ended(ctx, err)
	}
	sess.Heartbeat()
	if err = stream.Send(&models.Heartbeat{}); err != nil {
		endSession(sess, err)
		return ended(ctx, err)
	}

	log.Info().
		Str("func", "Handler.KeepAlive").
		Uint64("session_id", sess.ID()).
		Str("identity", sess.Identity().Short()).
		Msg("device admitted")

	received := make(chan error, 1)
	go func() {
		for {
			if _, err := stream.Recv(); err != nil {
				received <- err
				return
			}
			sess.Heartbeat()
			_ = stream.Send(&models.Heartbeat{})
		}
	}()

	select {
	case <-sess.Done():
		if errors.Is(context.Cause(sess.Context()), session.ErrSessionLost) {
			return status.Error(codes.Unavailable, session.ErrSessionLost.Error())
		}
		return nil
	case err = <-received:
		endSession(sess, err)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ended(ctx, err)
	}
}

// endSession closes the session when the device hung up and loses it on any
// other transport failure.
func endSession(sess *session.Session, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || status.Code(err) == codes.Canceled {
		sess.Close()
		return
	}
	sess.Lose()
}

// AdvertiseDocumentsToTerminal records the device catalog. The end of the
// stream closes the advertisement window.
func (h *Handler) AdvertiseDocumentsToTerminal(stream rpc.AdvertiseDocumentsToTerminalServer) error {
	ctx := stream.Context()

	var count int
	for {
		md, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ended(ctx, err)
		}
		if err = h.documents.DocumentAdvertised(ctx, *md); err != nil {
			return ended(ctx, err)
		}
		count++
	}

	h.documents.AdvertisementEnded(ctx)

	identity, _ := utils.GetDeviceIdentityFromContext(ctx)
	logger.FromContext(ctx).Debug().
		Str("identity", identity.Short()).
		Int("documents", count).
		Msg("catalog received")

	return stream.SendAndClose(&models.Empty{})
}

func (h *Handler) missing(kind models.MissingKind, stream rpc.MissingServer) error {
	ctx := stream.Context()
	err := h.documents.WatchMissing(ctx, kind, func(id models.DocumentIdentifier) error {
		return stream.Send(&models.IdentifierMessage{ID: id})
	})
	return ended(ctx, err)
}

func (h *Handler) MissingDocumentsForDevice(_ *models.Empty, stream rpc.MissingServer) error {
	return h.missing(models.MissingDocumentsForDevice, stream)
}

func (h *Handler) MissingDocumentsForTerminal(_ *models.Empty, stream rpc.MissingServer) error {
	return h.missing(models.MissingDocumentsForTerminal, stream)
}

func (h *Handler) MissingOnefoldKeysForTerminal(_ *models.Empty, stream rpc.MissingServer) error {
	return h.missing(models.MissingOnefoldKeysForTerminal, stream)
}

func (h *Handler) MissingTwofoldKeysForTerminal(_ *models.Empty, stream rpc.MissingServer) error {
	return h.missing(models.MissingTwofoldKeysForTerminal, stream)
}

// TransferDocumentToDevice streams a stored unit to the device.
func (h *Handler) TransferDocumentToDevice(in *models.IdentifierMessage, stream rpc.TransferDocumentToDeviceServer) error {
	ctx := stream.Context()
	err := h.documents.StreamDocument(ctx, in.ID, func(frame models.DocumentFrame) error {
		return stream.Send(&frame)
	})
	return ended(ctx, err)
}

// TransferDocumentToTerminal assembles a unit pushed by the device. A
// violation of the frame order discards everything received.
func (h *Handler) TransferDocumentToTerminal(stream rpc.TransferDocumentToTerminalServer) error {
	ctx := stream.Context()

	unit, err := transfer.Receive(func() (models.DocumentFrame, error) {
		frame, err := stream.Recv()
		if err != nil {
			return models.DocumentFrame{}, err
		}
		return *frame, nil
	}, h.maxDocumentSize)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Handler.TransferDocumentToTerminal").
			Msg("discarding partial document")
		return ended(ctx, err)
	}

	if err = h.documents.DocumentReceived(ctx, unit); err != nil {
		return ended(ctx, err)
	}
	return stream.SendAndClose(&models.Empty{})
}

func (h *Handler) TransferOnefoldKey(ctx context.Context, in *models.KeyWithIdentifier) (*models.Empty, error) {
	if err := h.documents.OnefoldKeyGranted(ctx, *in); err != nil {
		return nil, ended(ctx, err)
	}
	return &models.Empty{}, nil
}

func (h *Handler) TransferTwofoldKey(ctx context.Context, in *models.KeyWithIdentifier) (*models.Empty, error) {
	if err := h.documents.TwofoldKeyReceived(ctx, *in); err != nil {
		return nil, ended(ctx, err)
	}
	return &models.Empty{}, nil
}

func (h *Handler) DenyOnefoldKey(ctx context.Context, in *models.IdentifierMessage) (*models.Empty, error) {
	if err := h.documents.OnefoldKeyDenied(ctx, in.ID); err != nil {
		return nil, ended(ctx, err)
	}
	return &models.Empty{}, nil
}

func (h *Handler) DeleteDocument(ctx context.Context, in *models.IdentifierMessage) (*models.Empty, error) {
	if err := h.documents.DocumentDeleted(ctx, in.ID); err != nil {
		return nil, ended(ctx, err)
	}
	return &models.Empty{}, nil
}
