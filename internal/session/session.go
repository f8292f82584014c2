// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the terminal side connection state machine:
// single-session admission and heartbeat-based liveness.
//
//	Idle → AwaitingIdentity → Active → (Lost | Closed)
package session

import (
	"context"
	"time"

	"github.com/MKhiriev/health-enclave/models"
)

// State is a node of the session state machine.
type State int

const (
	StateIdle State = iota
	StateAwaitingIdentity
	StateActive
	StateLost
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingIdentity:
		return "awaiting_identity"
	case StateActive:
		return "active"
	case StateLost:
		return "lost"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Session is one admitted device connection.
type Session struct {
	manager  *Manager
	id       uint64
	identity models.DeviceIdentity
	since    time.Time

	ctx    context.Context
	cancel context.CancelCauseFunc

	// guarded by manager.mu
	state    State
	lastBeat time.Time
}

// ID is unique per Manager and increases with every admission.
func (s *Session) ID() uint64 { return s.id }

// Identity is the admitted device identity.
func (s *Session) Identity() models.DeviceIdentity { return s.identity }

// Since is the admission time.
func (s *Session) Since() time.Time { return s.since }

// Context is cancelled when the session ends. context.Cause reports
// ErrSessionLost or ErrSessionClosed.
func (s *Session) Context() context.Context { return s.ctx }

// Done is closed when the session ends.
func (s *Session) Done() <-chan struct{} { return s.ctx.Done() }

// State returns the current state.
func (s *Session) State() State {
	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()
	return s.state
}

// Heartbeat refreshes liveness. It has no effect once the session ended.
func (s *Session) Heartbeat() {
	s.manager.mu.Lock()
	defer s.manager.mu.Unlock()
	if s.state == StateActive {
		s.lastBeat = s.manager.now()
	}
}

// Close ends the session gracefully.
func (s *Session) Close() {
	s.manager.end(s, StateClosed)
}

// Lose ends the session after a transport failure.
func (s *Session) Lose() {
	s.manager.end(s, StateLost)
}

func (s *Session) monitor(interval, timeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.manager.mu.Lock()
			expired := s.state == StateActive && s.manager.now().Sub(s.lastBeat) > timeout
			s.manager.mu.Unlock()
			if expired {
				s.Lose()
				return
			}
		}
	}
}
