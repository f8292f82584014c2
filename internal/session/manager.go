// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/health-enclave/models"
)

// EventKind distinguishes session lifecycle events.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventClosed
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventClosed:
		return "closed"
	case EventLost:
		return "lost"
	}
	return "unknown"
}

// Event reports a session lifecycle transition. Exactly one end event
// (EventClosed or EventLost) is emitted per admitted session.
type Event struct {
	Kind      EventKind
	SessionID uint64
	Identity  models.DeviceIdentity
}

const eventsBuffer = 16

// Manager admits at most one Active session at a time.
type Manager struct {
	mu      sync.Mutex
	timeout time.Duration
	current *Session
	last    *Session
	nextID  uint64
	events  chan Event
	now     func() time.Time
}

// NewManager returns a manager that declares a session lost when no
// heartbeat was observed within timeout.
func NewManager(timeout time.Duration) *Manager {
	return &Manager{
		timeout: timeout,
		events:  make(chan Event, eventsBuffer),
		now:     time.Now,
	}
}

// Events delivers lifecycle events to a single consumer.
func (m *Manager) Events() <-chan Event {
	return m.events
}

func (m *Manager) emit(e Event) {
	// events are never dropped; the consumer runs for the life of the process
	m.events <- e
}

// Admit binds identityHex to a new Active session.
func (m *Manager) Admit(identityHex string) (*Session, error) {
	m.mu.Lock()

	if m.current != nil && m.current.state == StateActive {
		m.mu.Unlock()
		return nil, ErrAlreadyConnected
	}

	s := &Session{manager: m, state: StateAwaitingIdentity}
	identity, err := models.ParseDeviceIdentity(identityHex)
	if err != nil {
		m.mu.Unlock()
		return nil, ErrInvalidIdentity
	}

	m.nextID++
	s.id = m.nextID
	s.identity = identity
	s.since = m.now()
	s.lastBeat = s.since
	s.state = StateActive
	s.ctx, s.cancel = context.WithCancelCause(context.Background())
	m.current = s
	m.last = s
	m.mu.Unlock()

	m.emit(Event{Kind: EventStarted, SessionID: s.id, Identity: identity})

	go s.monitor(max(m.timeout/4, time.Millisecond), m.timeout)
	return s, nil
}

func (m *Manager) end(s *Session, state State) {
	m.mu.Lock()
	if s.state != StateActive {
		m.mu.Unlock()
		return
	}
	s.state = state
	if m.current == s {
		m.current = nil
	}
	m.mu.Unlock()

	kind, cause := EventClosed, ErrSessionClosed
	if state == StateLost {
		kind, cause = EventLost, ErrSessionLost
	}
	s.cancel(cause)
	m.emit(Event{Kind: kind, SessionID: s.id, Identity: s.identity})
}

// Authorize returns the Active session when identityHex matches it.
func (m *Manager) Authorize(identityHex string) (*Session, error) {
	identity, err := models.ParseDeviceIdentity(identityHex)
	if err != nil {
		return nil, ErrInvalidIdentity
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.state != StateActive || !m.current.identity.Equal(identity) {
		return nil, ErrInvalidIdentity
	}
	return m.current, nil
}

// Current returns the Active session, if any.
func (m *Manager) Current() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, false
	}
	return m.current, true
}

// Snapshot describes the most recent session for operators.
func (m *Manager) Snapshot() models.SessionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil {
		return models.SessionInfo{State: StateIdle.String()}
	}
	info := models.SessionInfo{
		State:    m.last.state.String(),
		Identity: m.last.identity.Short(),
		Since:    m.last.since.UTC().Format(time.RFC3339),
	}
	return info
}

// Shutdown closes the Active session, if any.
func (m *Manager) Shutdown() {
	if s, ok := m.Current(); ok {
		s.Close()
	}
}
