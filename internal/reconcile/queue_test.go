// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/health-enclave/models"
)

const (
	idA = models.DocumentIdentifier("a")
	idB = models.DocumentIdentifier("b")
	idC = models.DocumentIdentifier("c")
)

// ── Ordering ────────────────────────────────────────────────────────────────

func TestQueue_LIFO(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Push(idB)
	q.Push(idC)

	assert.Equal(t, []models.DocumentIdentifier{idC, idB, idA}, q.Snapshot())

	id, ok := q.TryPop()
	require.True(t, ok)
	assert.Equal(t, idC, id)
}

func TestQueue_RePushMovesToTop(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Push(idB)
	q.Push(idA)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []models.DocumentIdentifier{idA, idB}, q.Snapshot())
}

func TestQueue_PushInFlightIsNoop(t *testing.T) {
	q := NewQueue()
	q.Push(idA)

	id, ok := q.TryPop()
	require.True(t, ok)
	require.Equal(t, idA, id)

	q.Push(idA)
	assert.Equal(t, 0, q.Len())
	assert.True(t, q.Contains(idA))

	q.Done(idA)
	assert.False(t, q.Contains(idA))
	q.Push(idA)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_ResetInFlightRequeuesOnTop(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Push(idB)

	_, _ = q.TryPop() // b in flight
	q.Push(idC)
	q.ResetInFlight()

	assert.Equal(t, []models.DocumentIdentifier{idB, idC, idA}, q.Snapshot())
}

func TestQueue_Remove(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Push(idB)
	_, _ = q.TryPop()

	q.Remove(idA)
	q.Remove(idB)
	assert.False(t, q.Contains(idA))
	assert.False(t, q.Contains(idB))
	q.ResetInFlight()
	assert.Equal(t, 0, q.Len())
}

// ── Blocking ────────────────────────────────────────────────────────────────

func TestQueue_PopBlocksUntilPush(t *testing.T) {
	q := NewQueue()

	got := make(chan models.DocumentIdentifier, 1)
	go func() {
		id, err := q.Pop(context.Background())
		if err == nil {
			got <- id
		}
	}()

	time.Sleep(20 * time.Millisecond)
	q.Push(idA)

	select {
	case id := <-got:
		assert.Equal(t, idA, id)
	case <-time.After(time.Second):
		t.Fatal("Pop did not wake up")
	}
}

func TestQueue_PopHonoursContext(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := q.Pop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueue_Close(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Close()

	id, err := q.Pop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, idA, id)

	_, err = q.Pop(context.Background())
	assert.ErrorIs(t, err, ErrQueueClosed)
}

// ── Drain ───────────────────────────────────────────────────────────────────

func TestQueue_DrainServesMostRecentFirst(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Push(idB)
	q.Push(idC)
	q.Close()

	var served []models.DocumentIdentifier
	err := q.Drain(context.Background(), func(_ context.Context, id models.DocumentIdentifier) error {
		served = append(served, id)
		return nil
	}, nil)

	assert.ErrorIs(t, err, ErrQueueClosed)
	assert.Equal(t, []models.DocumentIdentifier{idC, idB, idA}, served)
}

func TestQueue_DrainFailedItemDoesNotBlock(t *testing.T) {
	q := NewQueue()
	q.Push(idA)
	q.Push(idB)
	q.Close()

	boom := errors.New("boom")
	var failed []models.DocumentIdentifier
	var served []models.DocumentIdentifier
	_ = q.Drain(context.Background(), func(_ context.Context, id models.DocumentIdentifier) error {
		served = append(served, id)
		if id == idB {
			return boom
		}
		return nil
	}, func(id models.DocumentIdentifier, err error) {
		assert.ErrorIs(t, err, boom)
		failed = append(failed, id)
	})

	assert.Equal(t, []models.DocumentIdentifier{idB, idA}, served)
	assert.Equal(t, []models.DocumentIdentifier{idB}, failed)
	assert.False(t, q.Contains(idB))
}

func TestQueue_DrainCancelledKeepsItemInFlight(t *testing.T) {
	q := NewQueue()
	q.Push(idA)

	ctx, cancel := context.WithCancel(context.Background())
	err := q.Drain(ctx, func(ctx context.Context, id models.DocumentIdentifier) error {
		cancel()
		return ctx.Err()
	}, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, q.Contains(idA))
	assert.Equal(t, 0, q.Len())

	q.ResetInFlight()
	assert.Equal(t, []models.DocumentIdentifier{idA}, q.Snapshot())
}

func TestQueue_DrainIsExclusive(t *testing.T) {
	q := NewQueue()
	for _, id := range []models.DocumentIdentifier{idA, idB, idC} {
		q.Push(id)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		count   int
	)
	work := func(context.Context, models.DocumentIdentifier) error {
		mu.Lock()
		active++
		maxSeen = max(maxSeen, active)
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		active--
		count++
		if count == 3 {
			cancel()
		}
		mu.Unlock()
		return nil
	}

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = q.Drain(ctx, work, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 3, count)
}
