// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile holds the bookkeeping both sides use to converge their
// document sets: a catalog of what the peer advertised and LIFO queues of
// identifiers waiting to be requested.
package reconcile

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/MKhiriev/health-enclave/models"
)

// ErrQueueClosed is returned by Pop after Close.
var ErrQueueClosed = errors.New("queue closed")

// Queue is a LIFO of document identifiers. Pushing an identifier that is
// already queued moves it to the top; pushing one that is in flight is a
// no-op. Popped identifiers stay in flight until Done, Remove or
// ResetInFlight.
type Queue struct {
	mu       sync.Mutex
	items    []models.DocumentIdentifier
	inFlight map[models.DocumentIdentifier]struct{}
	notify   chan struct{}
	closed   bool

	// drainer admits a single Drain at a time
	drainer chan struct{}
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{
		inFlight: make(map[models.DocumentIdentifier]struct{}),
		notify:   make(chan struct{}, 1),
		drainer:  make(chan struct{}, 1),
	}
}

func (q *Queue) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *Queue) removeLocked(id models.DocumentIdentifier) {
	q.items = slices.DeleteFunc(q.items, func(item models.DocumentIdentifier) bool {
		return item == id
	})
}

// Push places id on top of the queue.
func (q *Queue) Push(id models.DocumentIdentifier) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, busy := q.inFlight[id]; busy {
		return
	}
	q.removeLocked(id)
	q.items = append(q.items, id)
	q.signal()
}

// TryPop takes the top identifier without blocking.
func (q *Queue) TryPop() (models.DocumentIdentifier, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return "", false
	}
	id := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	q.inFlight[id] = struct{}{}
	if len(q.items) > 0 {
		q.signal()
	}
	return id, true
}

// Pop blocks until an identifier is available, ctx ends or the queue is
// closed.
func (q *Queue) Pop(ctx context.Context) (models.DocumentIdentifier, error) {
	for {
		if id, ok := q.TryPop(); ok {
			return id, nil
		}

		q.mu.Lock()
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return "", ErrQueueClosed
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-q.notify:
		}
	}
}

// Done clears the in-flight mark of id.
func (q *Queue) Done(id models.DocumentIdentifier) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.inFlight, id)
}

// Remove drops id whether queued or in flight.
func (q *Queue) Remove(id models.DocumentIdentifier) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.inFlight, id)
	q.removeLocked(id)
}

// ResetInFlight puts every in-flight identifier back on top so that it is
// requested again on the next session.
func (q *Queue) ResetInFlight() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.inFlight) == 0 {
		return
	}
	for id := range q.inFlight {
		q.removeLocked(id)
		q.items = append(q.items, id)
	}
	clear(q.inFlight)
	q.signal()
}

// Contains reports whether id is queued or in flight.
func (q *Queue) Contains(id models.DocumentIdentifier) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.inFlight[id]; ok {
		return true
	}
	return slices.Contains(q.items, id)
}

// Len is the number of queued identifiers, excluding in-flight ones.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Snapshot returns the queued identifiers from top to bottom.
func (q *Queue) Snapshot() []models.DocumentIdentifier {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := slices.Clone(q.items)
	slices.Reverse(out)
	return out
}

// Close wakes blocked Pop calls with ErrQueueClosed once the queue is empty.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.signal()
}

// Drain pops identifiers and hands them to fn until ctx ends. Only one Drain
// runs per queue; a second caller waits for the first to return. An
// identifier whose fn fails is dropped after onErr is told; it is pushed again
// when its need is rediscovered. When ctx ends while fn runs the identifier
// stays in flight for ResetInFlight.
func (q *Queue) Drain(ctx context.Context, fn func(context.Context, models.DocumentIdentifier) error, onErr func(models.DocumentIdentifier, error)) error {
	select {
	case q.drainer <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-q.drainer }()

	for {
		id, err := q.Pop(ctx)
		if err != nil {
			return err
		}

		err = fn(ctx, id)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil && onErr != nil {
			onErr(id, err)
		}
		q.Done(id)
	}
}
