// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/metrics"
	"github.com/MKhiriev/health-enclave/internal/reconcile"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/internal/transfer"
	"github.com/MKhiriev/health-enclave/internal/utils"
	"github.com/MKhiriev/health-enclave/models"
)

// terminalSession is the state of one admitted device.
type terminalSession struct {
	id         uint64
	identity   models.DeviceIdentity
	repo       store.DocumentRepository
	advertised *reconcile.Catalog

	windowClosed bool
	timer        *time.Timer
}

// pendingRetrieval is resolved at most once. A onefold key granted before the
// body arrived is parked in grant.
type pendingRetrieval struct {
	done     chan struct{}
	err      error
	resolved bool
	grant    *models.StoredKey
}

type terminalDocumentsService struct {
	storage   store.DocumentStorage
	sharedKey *crypto.SharedKeyHolder
	ids       *utils.UUIDGenerator

	practitioner     string
	advertiseTimeout time.Duration
	now              func() time.Time

	mu           sync.Mutex
	session      *terminalSession
	lastIdentity models.DeviceIdentity
	queues       *reconcile.Queues
	pending      map[models.DocumentIdentifier]*pendingRetrieval

	logger *logger.Logger
}

// NewTerminalDocumentsService constructs the terminal coordinator. The
// SharedKey holder may already carry a key taken from the configuration.
func NewTerminalDocumentsService(storage store.DocumentStorage, sharedKey *crypto.SharedKeyHolder, cfg *config.TerminalConfig, logger *logger.Logger) TerminalDocumentsService {
	return &terminalDocumentsService{
		storage:          storage,
		sharedKey:        sharedKey,
		ids:              utils.NewUUIDGenerator(),
		practitioner:     cfg.App.Practitioner,
		advertiseTimeout: cfg.Session.AdvertiseTimeout,
		now:              time.Now,
		queues:           reconcile.NewQueues(),
		pending:          make(map[models.DocumentIdentifier]*pendingRetrieval),
		logger:           logger,
	}
}

func (s *terminalDocumentsService) current() (*terminalSession, *reconcile.Queues, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, nil, ErrNoSession
	}
	return s.session, s.queues, nil
}

// ── SharedKey ────────────────────────────────────────────────────────────────

func (s *terminalDocumentsService) SetSharedKey(encoded string) (string, error) {
	fingerprint, err := s.sharedKey.SetEncoded(encoded)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("func", "terminalDocumentsService.SetSharedKey").Str("fingerprint", fingerprint).Msg("shared key installed")
	return fingerprint, nil
}

func (s *terminalDocumentsService) SharedKeyFingerprint() string {
	return s.sharedKey.Fingerprint()
}

// ── Operator operations ──────────────────────────────────────────────────────

func (s *terminalDocumentsService) AddDocument(ctx context.Context, name string, body []byte) (models.DocumentMetadata, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(body) == 0 {
		return models.DocumentMetadata{}, ErrInvalidDocument
	}

	sess, queues, err := s.current()
	if err != nil {
		return models.DocumentMetadata{}, err
	}

	sharedKey, fingerprint, err := s.sharedKey.Key()
	if err != nil {
		return models.DocumentMetadata{}, err
	}
	defer memguard.WipeBytes(sharedKey[:])

	md := models.NewDocumentMetadata(s.ids.DocumentIdentifier(), name, s.practitioner, s.now())
	onefold, encrypted, err := crypto.EncryptDocument(body, sharedKey, md)
	if err != nil {
		return models.DocumentMetadata{}, fmt.Errorf("error encrypting document: %w", err)
	}

	unit := models.DocumentUnit{
		Metadata: md,
		Key: models.StoredKey{
			Key:         models.OnefoldKey(onefold),
			Origin:      models.KeyOriginCreated,
			SharedKeyID: fingerprint,
		},
		Body: encrypted,
	}
	if err = sess.repo.Put(ctx, unit); err != nil {
		return models.DocumentMetadata{}, err
	}

	queues.DocumentsForDevice.Push(md.ID)

	s.logger.Info().
		Str("func", "terminalDocumentsService.AddDocument").
		Str("document_id", md.ID.String()).
		Int("size", len(body)).
		Msg("document added")
	return md, nil
}

func (s *terminalDocumentsService) ListDocuments(ctx context.Context) ([]models.DocumentSummary, error) {
	sess, _, err := s.current()
	if err != nil {
		return nil, err
	}

	local, err := sess.repo.ListMetadata(ctx)
	if err != nil {
		return nil, err
	}

	fingerprint := s.sharedKey.Fingerprint()
	stored := make(map[models.DocumentIdentifier]struct{}, len(local))
	summaries := make([]models.DocumentSummary, 0, len(local)+sess.advertised.Len())

	for _, md := range local {
		key, err := sess.repo.GetKey(ctx, md.ID)
		if err != nil && !errors.Is(err, store.ErrMissingKey) {
			return nil, err
		}

		stored[md.ID] = struct{}{}
		summaries = append(summaries, models.DocumentSummary{
			DocumentMetadata: md,
			Stored:           true,
			OnDevice:         sess.advertised.Has(md.ID),
			Readable:         err == nil && key.UsableWith(fingerprint),
		})
	}

	for _, md := range sess.advertised.List() {
		if _, ok := stored[md.ID]; ok {
			continue
		}
		summaries = append(summaries, models.DocumentSummary{DocumentMetadata: md, OnDevice: true})
	}

	slices.SortFunc(summaries, func(a, b models.DocumentSummary) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return summaries, nil
}

func (s *terminalDocumentsService) RequestDocument(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, error) {
	retrieval, _, err := s.request(ctx, id)
	return retrieval, err
}

func (s *terminalDocumentsService) RetrieveDocument(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, error) {
	for {
		retrieval, wait, err := s.request(ctx, id)
		if err != nil || retrieval.Status == models.RetrievalReady {
			return retrieval, err
		}

		select {
		case <-ctx.Done():
			return models.Retrieval{}, fmt.Errorf("%w: %w", ErrRetrievalPending, ctx.Err())
		case <-wait:
		}
	}
}

// request resolves id from local custody or asks the device for what is
// missing. For a Pending retrieval it returns the channel closed on
// resolution.
func (s *terminalDocumentsService) request(ctx context.Context, id models.DocumentIdentifier) (models.Retrieval, <-chan struct{}, error) {
	if err := id.Validate(); err != nil {
		return models.Retrieval{}, nil, err
	}

	if err := s.takeFailure(id); err != nil {
		return models.Retrieval{}, nil, err
	}

	sess, queues, err := s.current()
	if err != nil {
		return models.Retrieval{}, nil, err
	}

	sharedKey, fingerprint, err := s.sharedKey.Key()
	if err != nil {
		return models.Retrieval{}, nil, err
	}
	defer memguard.WipeBytes(sharedKey[:])

	md, err := sess.repo.Metadata(ctx, id)
	switch {
	case errors.Is(err, store.ErrMissingMetadata):
		advertised, ok := sess.advertised.Get(id)
		if !ok {
			return models.Retrieval{}, nil, ErrDocumentNotFound
		}
		// the body travels with the device's twofold key, access comes
		// separately
		wait := s.await(id)
		queues.DocumentsForTerminal.Push(id)
		queues.OnefoldKeysForTerminal.Push(id)
		return models.Retrieval{Status: models.RetrievalPending, Metadata: advertised}, wait, nil
	case err != nil:
		return models.Retrieval{}, nil, err
	}

	key, err := sess.repo.GetKey(ctx, id)
	if err != nil && !errors.Is(err, store.ErrMissingKey) {
		return models.Retrieval{}, nil, err
	}
	if err != nil || !key.UsableWith(fingerprint) {
		wait := s.await(id)
		queues.OnefoldKeysForTerminal.Push(id)
		return models.Retrieval{Status: models.RetrievalPending, Metadata: md}, wait, nil
	}

	body, err := s.decrypt(ctx, sess.repo, md, key, sharedKey)
	if err != nil {
		s.logger.Err(err).
			Str("func", "terminalDocumentsService.request").
			Str("document_id", id.String()).
			Msg("failed to decrypt document")
		return models.Retrieval{}, nil, err
	}

	s.forget(id)
	return models.Retrieval{Status: models.RetrievalReady, Metadata: md, Body: body}, nil, nil
}

func (s *terminalDocumentsService) decrypt(ctx context.Context, repo store.DocumentRepository, md models.DocumentMetadata, key models.StoredKey, sharedKey crypto.SharedKey) ([]byte, error) {
	var encrypted bytes.Buffer
	err := repo.ReadChunks(ctx, md.ID, func(chunk []byte) error {
		_, err := encrypted.Write(chunk)
		return err
	})
	if err != nil {
		return nil, err
	}

	return crypto.DecryptDocument(encrypted.Bytes(), key.Key.Onefold, sharedKey, md)
}

// ── Pending retrievals ───────────────────────────────────────────────────────

// await returns the resolution channel of id, opening a new pending entry
// when none is waiting.
func (s *terminalDocumentsService) await(id models.DocumentIdentifier) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok || p.resolved {
		p = &pendingRetrieval{done: make(chan struct{})}
		s.pending[id] = p
		s.reportPendingLocked()
	}
	return p.done
}

// takeFailure consumes a failed resolution so that it is reported once.
func (s *terminalDocumentsService) takeFailure(id models.DocumentIdentifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok || !p.resolved || p.err == nil {
		return nil
	}
	delete(s.pending, id)
	return p.err
}

// forget wakes other waiters of id, which then read the document themselves.
func (s *terminalDocumentsService) forget(id models.DocumentIdentifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolveLocked(id, nil)
	delete(s.pending, id)
}

// holdGrant parks a granted key until the body arrives. It reports false when
// nobody waits for id.
func (s *terminalDocumentsService) holdGrant(id models.DocumentIdentifier, key models.StoredKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok || p.resolved {
		return false
	}
	p.grant = &key
	return true
}

func (s *terminalDocumentsService) heldGrant(id models.DocumentIdentifier) *models.StoredKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[id]; ok && !p.resolved {
		return p.grant
	}
	return nil
}

func (s *terminalDocumentsService) resolve(id models.DocumentIdentifier, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolveLocked(id, err)
}

func (s *terminalDocumentsService) resolveLocked(id models.DocumentIdentifier, err error) {
	p, ok := s.pending[id]
	if !ok || p.resolved {
		return
	}

	p.err = err
	p.resolved = true
	p.grant = nil
	close(p.done)
	s.reportPendingLocked()
}

func (s *terminalDocumentsService) reportPendingLocked() {
	n := 0
	for _, p := range s.pending {
		if !p.resolved {
			n++
		}
	}
	metrics.SetPendingRetrievals(n)
}

// ── Session lifecycle ────────────────────────────────────────────────────────

func (s *terminalDocumentsService) Run(ctx context.Context, events <-chan session.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}

			metrics.Session(event.Kind.String())
			s.logger.Info().
				Str("func", "terminalDocumentsService.Run").
				Uint64("session_id", event.SessionID).
				Str("identity", event.Identity.Short()).
				Str("event", event.Kind.String()).
				Msg("session event")

			if event.Kind == session.EventClosed || event.Kind == session.EventLost {
				s.SessionEnded(event.SessionID)
			}
		}
	}
}

func (s *terminalDocumentsService) SessionStarted(ctx context.Context, sessionID uint64, identity models.DeviceIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.endLocked()
	}
	if !identity.Equal(s.lastIdentity) {
		s.queues = reconcile.NewQueues()
		clear(s.pending)
	}
	s.lastIdentity = identity

	sess := &terminalSession{
		id:         sessionID,
		identity:   identity,
		repo:       s.storage.Documents(identity),
		advertised: reconcile.NewCatalog(),
	}
	sess.timer = time.AfterFunc(s.advertiseTimeout, func() {
		s.closeAdvertisement(ctx, sess)
	})
	s.session = sess
}

func (s *terminalDocumentsService) SessionEnded(sessionID uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.id != sessionID {
		return
	}
	s.endLocked()
}

func (s *terminalDocumentsService) endLocked() {
	s.session.timer.Stop()
	s.queues.ResetInFlight()

	for id := range s.pending {
		s.resolveLocked(id, session.ErrSessionLost)
	}

	s.session = nil
}

// ── Inbound from the device ──────────────────────────────────────────────────

func (s *terminalDocumentsService) DocumentAdvertised(ctx context.Context, md models.DocumentMetadata) error {
	if err := md.Validate(); err != nil {
		return err
	}

	sess, queues, err := s.current()
	if err != nil {
		return err
	}

	sess.advertised.Add(md)

	stored, err := sess.repo.Has(ctx, md.ID)
	if err != nil {
		return err
	}
	if !stored {
		queues.DocumentsForTerminal.Push(md.ID)
	}
	return nil
}

func (s *terminalDocumentsService) AdvertisementEnded(ctx context.Context) {
	sess, _, err := s.current()
	if err != nil {
		return
	}
	s.closeAdvertisement(ctx, sess)
}

// closeAdvertisement runs once per session, at the end of the device's
// advertisement or when the window times out. Documents the device did not
// advertise are queued for it; handed-over documents still in created custody
// ask for the device's twofold copy.
func (s *terminalDocumentsService) closeAdvertisement(ctx context.Context, sess *terminalSession) {
	s.mu.Lock()
	if s.session != sess || sess.windowClosed {
		s.mu.Unlock()
		return
	}
	sess.windowClosed = true
	sess.timer.Stop()
	queues := s.queues
	s.mu.Unlock()

	local, err := sess.repo.ListMetadata(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "terminalDocumentsService.closeAdvertisement").Msg("failed to list local documents")
		return
	}

	var forDevice, forTwofold int
	for _, md := range local {
		if !sess.advertised.Has(md.ID) {
			queues.DocumentsForDevice.Push(md.ID)
			forDevice++
			continue
		}

		key, err := sess.repo.GetKey(ctx, md.ID)
		if err == nil && key.Origin == models.KeyOriginCreated {
			queues.TwofoldKeysForTerminal.Push(md.ID)
			forTwofold++
		}
	}

	s.logger.Debug().
		Str("func", "terminalDocumentsService.closeAdvertisement").
		Int("advertised", sess.advertised.Len()).
		Int("missing_for_device", forDevice).
		Int("missing_twofold", forTwofold).
		Msg("advertisement closed")
}

func (s *terminalDocumentsService) DocumentReceived(ctx context.Context, unit models.DocumentUnit) error {
	if err := unit.Metadata.Validate(); err != nil {
		return err
	}
	if unit.Key.Key.Kind() != models.KeyKindTwofold {
		return fmt.Errorf("%w: document arrived with %s key", ErrUnexpectedKeyKind, unit.Key.Key.Kind())
	}

	sess, queues, err := s.current()
	if err != nil {
		return err
	}

	id := unit.Metadata.ID
	unit.Key = models.StoredKey{Key: unit.Key.Key, Origin: models.KeyOriginDevice}
	grant := s.heldGrant(id)
	if grant != nil {
		unit.Key = *grant
	}

	err = sess.repo.Put(ctx, unit)
	queues.DocumentsForTerminal.Remove(id)
	if err != nil {
		if !errors.Is(err, store.ErrDocumentExists) {
			metrics.TransferError(metrics.DirectionToTerminal)
		}
		return err
	}

	sess.advertised.Add(unit.Metadata)
	metrics.DocumentTransferred(metrics.DirectionToTerminal)

	if grant != nil {
		queues.OnefoldKeysForTerminal.Remove(id)
		s.resolve(id, nil)
	}

	s.logger.Info().
		Str("func", "terminalDocumentsService.DocumentReceived").
		Str("document_id", id.String()).
		Bool("granted", grant != nil).
		Msg("document received from device")
	return nil
}

func (s *terminalDocumentsService) OnefoldKeyGranted(ctx context.Context, key models.KeyWithIdentifier) error {
	if key.Key.Kind() != models.KeyKindOnefold {
		return fmt.Errorf("%w: grant carries %s key", ErrUnexpectedKeyKind, key.Key.Kind())
	}

	sess, queues, err := s.current()
	if err != nil {
		return err
	}

	fingerprint := s.sharedKey.Fingerprint()
	if fingerprint == "" {
		return crypto.ErrNoSharedKey
	}

	metrics.KeyReceived(models.KeyKindOnefold.String())
	queues.OnefoldKeysForTerminal.Remove(key.ID)
	record := models.StoredKey{Key: key.Key, Origin: models.KeyOriginGranted, SharedKeyID: fingerprint}

	has, err := sess.repo.Has(ctx, key.ID)
	if err != nil {
		return err
	}
	if !has {
		if !s.holdGrant(key.ID, record) {
			s.logger.Warn().
				Str("func", "terminalDocumentsService.OnefoldKeyGranted").
				Str("document_id", key.ID.String()).
				Msg("dropping grant nobody waits for")
		}
		return nil
	}

	if err = sess.repo.PutKey(ctx, key.ID, record); err != nil {
		return err
	}
	s.resolve(key.ID, nil)
	return nil
}

func (s *terminalDocumentsService) OnefoldKeyDenied(ctx context.Context, id models.DocumentIdentifier) error {
	_, queues, err := s.current()
	if err != nil {
		return err
	}

	metrics.KeyReceived("denied")
	queues.OnefoldKeysForTerminal.Remove(id)
	s.resolve(id, ErrNoPermission)

	s.logger.Info().
		Str("func", "terminalDocumentsService.OnefoldKeyDenied").
		Str("document_id", id.String()).
		Msg("device denied access")
	return nil
}

func (s *terminalDocumentsService) TwofoldKeyReceived(ctx context.Context, key models.KeyWithIdentifier) error {
	if key.Key.Kind() != models.KeyKindTwofold {
		return fmt.Errorf("%w: forward carries %s key", ErrUnexpectedKeyKind, key.Key.Kind())
	}

	sess, queues, err := s.current()
	if err != nil {
		return err
	}

	md, err := sess.repo.Metadata(ctx, key.ID)
	if err != nil {
		return err
	}

	metrics.KeyReceived(models.KeyKindTwofold.String())
	queues.TwofoldKeysForTerminal.Remove(key.ID)
	queues.DocumentsForDevice.Remove(key.ID)
	sess.advertised.Add(md)

	current, err := sess.repo.GetKey(ctx, key.ID)
	if err != nil && !errors.Is(err, store.ErrMissingKey) {
		return err
	}
	if err == nil && current.Origin == models.KeyOriginGranted && current.UsableWith(s.sharedKey.Fingerprint()) {
		return nil
	}

	return sess.repo.PutKey(ctx, key.ID, models.StoredKey{Key: key.Key, Origin: models.KeyOriginDevice})
}

func (s *terminalDocumentsService) DocumentDeleted(ctx context.Context, id models.DocumentIdentifier) error {
	sess, queues, err := s.current()
	if err != nil {
		return err
	}

	if err = sess.repo.Delete(ctx, id); err != nil {
		return err
	}
	sess.advertised.Remove(id)
	queues.Remove(id)
	s.resolve(id, ErrDocumentNotFound)

	s.logger.Info().
		Str("func", "terminalDocumentsService.DocumentDeleted").
		Str("document_id", id.String()).
		Msg("document deleted by device")
	return nil
}

// ── Serving the device ───────────────────────────────────────────────────────

func (s *terminalDocumentsService) WatchMissing(ctx context.Context, kind models.MissingKind, fn func(models.DocumentIdentifier) error) error {
	_, queues, err := s.current()
	if err != nil {
		return err
	}

	queue := queues.ByKind(kind)
	if queue == nil {
		return fmt.Errorf("%w: %d", ErrUnknownMissingKind, kind)
	}

	for {
		id, err := queue.Pop(ctx)
		if err != nil {
			return err
		}
		if err = fn(id); err != nil {
			return err
		}
		// delivered; a later request may send it again to reprioritize
		queue.Done(id)
	}
}

func (s *terminalDocumentsService) StreamDocument(ctx context.Context, id models.DocumentIdentifier, send func(models.DocumentFrame) error) error {
	sess, _, err := s.current()
	if err != nil {
		return err
	}

	md, err := sess.repo.Metadata(ctx, id)
	if err != nil {
		return err
	}
	key, err := sess.repo.GetKey(ctx, id)
	if err != nil {
		return err
	}

	err = transfer.SendStream(md, key.Key, func(chunk func([]byte) error) error {
		return sess.repo.ReadChunks(ctx, id, chunk)
	}, send)
	if err != nil {
		metrics.TransferError(metrics.DirectionToDevice)
		return err
	}

	metrics.DocumentTransferred(metrics.DirectionToDevice)
	return nil
}
