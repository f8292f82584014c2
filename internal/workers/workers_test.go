// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
)

var errSession = errors.New("session ended")

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
	block    bool
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.block {
		<-ctx.Done()
		return nil
	}
	return m.err
}

// scriptedSyncer returns its errors in order, sleeping for the matching
// duration first. Once the script is exhausted it cancels the run.
type scriptedSyncer struct {
	mu        sync.Mutex
	durations []time.Duration
	calls     int
	cancel    context.CancelFunc
}

func (s *scriptedSyncer) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calls == len(s.durations) {
		s.cancel()
		return ctx.Err()
	}
	time.Sleep(s.durations[s.calls])
	s.calls++
	return errSession
}

// recordDelays replaces the worker's timer with one that fires at once and
// records the requested delay.
func recordDelays(w *SyncWorker) *[]time.Duration {
	var delays []time.Duration
	w.after = func(d time.Duration) <-chan time.Time {
		delays = append(delays, d)
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}
	return &delays
}

// ── Workers ─────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}

	require.NoError(t, NewWorkers(w1, w2, w3).Run(context.Background()))

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, NewWorkers().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &mockWorker{block: true}

	err := NewWorkers(blocking, &mockWorker{err: boom}).Run(context.Background())

	require.ErrorIs(t, err, boom)
	assert.EqualValues(t, 1, blocking.runCount.Load())
}

func TestWorkers_Run_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWorkers(&mockWorker{block: true}).Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

// ── SyncWorker ──────────────────────────────────────────────────────────────

func TestSyncWorker_BackoffGrowsAndCaps(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncer := &scriptedSyncer{durations: make([]time.Duration, 5), cancel: cancel}
	w := NewSyncWorker(syncer, config.Workers{
		ReconnectInterval:    time.Second,
		MaxReconnectInterval: 5 * time.Second,
	}, logger.Nop())
	delays := recordDelays(w)

	require.NoError(t, w.Run(ctx))

	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second,
	}, *delays)
}

func TestSyncWorker_LongSessionResetsBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncer := &scriptedSyncer{
		durations: []time.Duration{0, 0, 50 * time.Millisecond},
		cancel:    cancel,
	}
	w := NewSyncWorker(syncer, config.Workers{
		ReconnectInterval:    10 * time.Millisecond,
		MaxReconnectInterval: time.Second,
	}, logger.Nop())
	delays := recordDelays(w)

	require.NoError(t, w.Run(ctx))

	assert.Equal(t, []time.Duration{
		10 * time.Millisecond, 20 * time.Millisecond, 10 * time.Millisecond,
	}, *delays)
}

func TestSyncWorker_Defaults(t *testing.T) {
	w := NewSyncWorker(&scriptedSyncer{}, config.Workers{MaxReconnectInterval: time.Millisecond}, logger.Nop())

	assert.Equal(t, config.DefaultReconnectInterval, w.interval)
	assert.Equal(t, config.DefaultReconnectInterval, w.maxInterval)
}

func TestSyncWorker_StopsWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	syncer := &scriptedSyncer{durations: make([]time.Duration, 100), cancel: cancel}
	w := NewSyncWorker(syncer, config.Workers{
		ReconnectInterval:    time.Hour,
		MaxReconnectInterval: time.Hour,
	}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	syncer.mu.Lock()
	defer syncer.mu.Unlock()
	assert.Equal(t, 1, syncer.calls)
}
