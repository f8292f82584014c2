// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/awnumar/memguard"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/health-enclave/internal/adapter"
	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/reconcile"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

const accessRequestsBuffer = 16

type deviceDocumentsService struct {
	repo      store.DocumentRepository
	deviceKey *crypto.DeviceKeyHolder
	terminal  adapter.TerminalAdapter

	heartbeatInterval time.Duration

	queues    *reconcile.Queues
	requests  chan models.AccessRequest
	connected atomic.Bool

	logger *logger.Logger
}

// NewDeviceDocumentsService constructs the device coordinator for the
// documents in repo, talking to the terminal through terminal.
func NewDeviceDocumentsService(repo store.DocumentRepository, deviceKey *crypto.DeviceKeyHolder, terminal adapter.TerminalAdapter, cfg *config.DeviceConfig, logger *logger.Logger) DeviceDocumentsService {
	return &deviceDocumentsService{
		repo:              repo,
		deviceKey:         deviceKey,
		terminal:          terminal,
		heartbeatInterval: cfg.Session.HeartbeatInterval,
		queues:            reconcile.NewQueues(),
		requests:          make(chan models.AccessRequest, accessRequestsBuffer),
		logger:            logger,
	}
}

func (s *deviceDocumentsService) Connected() bool {
	return s.connected.Load()
}

func (s *deviceDocumentsService) AccessRequests() <-chan models.AccessRequest {
	return s.requests
}

func (s *deviceDocumentsService) PendingAccessRequests() []models.DocumentIdentifier {
	return s.queues.OnefoldKeysForTerminal.Snapshot()
}

func (s *deviceDocumentsService) ListDocuments(ctx context.Context) ([]models.DocumentMetadata, error) {
	return s.repo.ListMetadata(ctx)
}

// ── Session ──────────────────────────────────────────────────────────────────

func (s *deviceDocumentsService) Sync(ctx context.Context) error {
	admitted := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.terminal.KeepAlive(gctx, s.heartbeatInterval, func() { close(admitted) })
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case <-admitted:
		}

		s.connected.Store(true)
		defer s.connected.Store(false)
		return s.reconcile(gctx)
	})

	err := g.Wait()

	// identifiers handed out during the session are asked for again next time
	s.queues.DocumentsForDevice.ResetInFlight()
	s.queues.DocumentsForTerminal.ResetInFlight()
	s.queues.TwofoldKeysForTerminal.ResetInFlight()
	s.dropAccessRequests()

	s.logger.Info().Err(err).Str("func", "deviceDocumentsService.Sync").Msg("session ended")
	return err
}

// reconcile propagates deletions, advertises the catalog and then serves the
// terminal's missing streams until ctx ends.
func (s *deviceDocumentsService) reconcile(ctx context.Context) error {
	if err := s.propagateTombstones(ctx); err != nil {
		return err
	}

	catalog, err := s.repo.ListMetadata(ctx)
	if err != nil {
		return err
	}
	if err = s.terminal.Advertise(ctx, catalog); err != nil {
		return fmt.Errorf("error advertising catalog: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.terminal.WatchMissing(gctx, models.MissingDocumentsForDevice, func(id models.DocumentIdentifier) error {
			return s.documentMissingOnDevice(gctx, id)
		})
	})
	g.Go(func() error {
		return s.terminal.WatchMissing(gctx, models.MissingDocumentsForTerminal, func(id models.DocumentIdentifier) error {
			s.queues.DocumentsForTerminal.Push(id)
			return nil
		})
	})
	g.Go(func() error {
		return s.terminal.WatchMissing(gctx, models.MissingTwofoldKeysForTerminal, func(id models.DocumentIdentifier) error {
			s.queues.TwofoldKeysForTerminal.Push(id)
			return nil
		})
	})
	g.Go(func() error {
		return s.terminal.WatchMissing(gctx, models.MissingOnefoldKeysForTerminal, func(id models.DocumentIdentifier) error {
			return s.raiseAccessRequest(gctx, id)
		})
	})

	g.Go(func() error {
		return s.queues.DocumentsForDevice.Drain(gctx, s.pullDocument, s.drainFailed("pull"))
	})
	g.Go(func() error {
		return s.queues.DocumentsForTerminal.Drain(gctx, s.pushDocument, s.drainFailed("push"))
	})
	g.Go(func() error {
		return s.queues.TwofoldKeysForTerminal.Drain(gctx, s.forwardTwofoldKey, s.drainFailed("forward"))
	})

	return g.Wait()
}

func (s *deviceDocumentsService) drainFailed(operation string) func(models.DocumentIdentifier, error) {
	return func(id models.DocumentIdentifier, err error) {
		s.logger.Err(err).
			Str("func", "deviceDocumentsService.drain").
			Str("operation", operation).
			Str("document_id", id.String()).
			Msg("dropping failed item")
	}
}

func (s *deviceDocumentsService) propagateTombstones(ctx context.Context) error {
	tombstones, err := s.repo.ListTombstones(ctx)
	if err != nil {
		return err
	}

	for _, id := range tombstones {
		if err = s.terminal.DeleteDocument(ctx, id); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Err(err).
				Str("func", "deviceDocumentsService.propagateTombstones").
				Str("document_id", id.String()).
				Msg("failed to propagate deletion")
		}
	}
	return nil
}

// ── Missing streams ──────────────────────────────────────────────────────────

func (s *deviceDocumentsService) documentMissingOnDevice(ctx context.Context, id models.DocumentIdentifier) error {
	deleted, err := s.repo.IsTombstoned(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		return s.terminal.DeleteDocument(ctx, id)
	}

	has, err := s.repo.Has(ctx, id)
	if err != nil {
		return err
	}
	if has {
		// the terminal lost our twofold copy
		s.queues.TwofoldKeysForTerminal.Push(id)
		return nil
	}

	s.queues.DocumentsForDevice.Push(id)
	return nil
}

func (s *deviceDocumentsService) raiseAccessRequest(ctx context.Context, id models.DocumentIdentifier) error {
	md, err := s.repo.Metadata(ctx, id)
	if errors.Is(err, store.ErrMissingMetadata) {
		s.logger.Warn().
			Str("func", "deviceDocumentsService.raiseAccessRequest").
			Str("document_id", id.String()).
			Msg("access requested for unknown document")
		return s.terminal.DenyOnefoldKey(ctx, id)
	}
	if err != nil {
		return err
	}

	if s.queues.OnefoldKeysForTerminal.Contains(id) {
		return nil
	}
	s.queues.OnefoldKeysForTerminal.Push(id)

	select {
	case s.requests <- models.AccessRequest{Metadata: md}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *deviceDocumentsService) dropAccessRequests() {
	for _, id := range s.queues.OnefoldKeysForTerminal.Snapshot() {
		s.queues.OnefoldKeysForTerminal.Remove(id)
	}
	for {
		select {
		case <-s.requests:
		default:
			return
		}
	}
}

// ── Queue drainers ───────────────────────────────────────────────────────────

// pullDocument downloads a unit, takes it into twofold custody and forwards
// the twofold copy to the terminal.
func (s *deviceDocumentsService) pullDocument(ctx context.Context, id models.DocumentIdentifier) error {
	unit, err := s.terminal.PullDocument(ctx, id)
	if err != nil {
		return err
	}

	twofold, err := s.custody(unit.Key.Key, unit.Metadata)
	if err != nil {
		return err
	}
	unit.Key = models.StoredKey{Key: models.TwofoldKey(twofold), Origin: models.KeyOriginDevice}

	err = s.repo.Put(ctx, unit)
	switch {
	case errors.Is(err, store.ErrDocumentDeleted):
		return s.terminal.DeleteDocument(ctx, id)
	case errors.Is(err, store.ErrDocumentExists):
	case err != nil:
		return err
	}

	s.logger.Info().
		Str("func", "deviceDocumentsService.pullDocument").
		Str("document_id", id.String()).
		Msg("document stored on device")

	return s.terminal.TransferTwofoldKey(ctx, models.KeyWithIdentifier{ID: id, Key: models.TwofoldKey(twofold)})
}

// custody returns the twofold form of key. A twofold key must open under the
// DeviceKey; a onefold key is wrapped.
func (s *deviceDocumentsService) custody(key models.EncryptedDocumentKey, md models.DocumentMetadata) (models.TwofoldEncryptedKey, error) {
	deviceKey, err := s.deviceKey.Key()
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(deviceKey[:])

	switch key.Kind() {
	case models.KeyKindOnefold:
		return crypto.WrapForDevice(key.Onefold, deviceKey, md)
	case models.KeyKindTwofold:
		if _, err = crypto.UnwrapForTerminal(key.Twofold, deviceKey, md); err != nil {
			return nil, err
		}
		return key.Twofold, nil
	default:
		return nil, models.ErrMalformedKey
	}
}

func (s *deviceDocumentsService) pushDocument(ctx context.Context, id models.DocumentIdentifier) error {
	unit, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	err = s.terminal.PushDocument(ctx, unit)
	if err != nil && !errors.Is(err, store.ErrDocumentExists) {
		return err
	}
	return nil
}

func (s *deviceDocumentsService) forwardTwofoldKey(ctx context.Context, id models.DocumentIdentifier) error {
	key, err := s.repo.GetKey(ctx, id)
	if err != nil {
		return err
	}
	return s.terminal.TransferTwofoldKey(ctx, models.KeyWithIdentifier{ID: id, Key: key.Key})
}

// ── Holder decisions ─────────────────────────────────────────────────────────

func (s *deviceDocumentsService) GrantAccess(ctx context.Context, id models.DocumentIdentifier) error {
	if !s.Connected() {
		return ErrNotConnected
	}

	md, err := s.repo.Metadata(ctx, id)
	if err != nil {
		return err
	}
	key, err := s.repo.GetKey(ctx, id)
	if err != nil {
		return err
	}
	if key.Key.Kind() != models.KeyKindTwofold {
		return fmt.Errorf("%w: stored %s key", ErrUnexpectedKeyKind, key.Key.Kind())
	}

	deviceKey, err := s.deviceKey.Key()
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(deviceKey[:])

	onefold, err := crypto.UnwrapForTerminal(key.Key.Twofold, deviceKey, md)
	if err != nil {
		return err
	}

	if err = s.terminal.TransferOnefoldKey(ctx, models.KeyWithIdentifier{ID: id, Key: models.OnefoldKey(onefold)}); err != nil {
		return err
	}
	s.queues.OnefoldKeysForTerminal.Remove(id)

	s.logger.Info().
		Str("func", "deviceDocumentsService.GrantAccess").
		Str("document_id", id.String()).
		Msg("access granted")
	return nil
}

func (s *deviceDocumentsService) DenyAccess(ctx context.Context, id models.DocumentIdentifier) error {
	if !s.Connected() {
		return ErrNotConnected
	}

	if err := s.terminal.DenyOnefoldKey(ctx, id); err != nil {
		return err
	}
	s.queues.OnefoldKeysForTerminal.Remove(id)

	s.logger.Info().
		Str("func", "deviceDocumentsService.DenyAccess").
		Str("document_id", id.String()).
		Msg("access denied")
	return nil
}

func (s *deviceDocumentsService) DeleteDocument(ctx context.Context, id models.DocumentIdentifier) error {
	if err := s.repo.Tombstone(ctx, id); err != nil {
		return err
	}
	s.queues.Remove(id)

	if !s.Connected() {
		return nil
	}
	if err := s.terminal.DeleteDocument(ctx, id); err != nil {
		s.logger.Err(err).
			Str("func", "deviceDocumentsService.DeleteDocument").
			Str("document_id", id.String()).
			Msg("deletion will be propagated on the next session")
	}
	return nil
}
