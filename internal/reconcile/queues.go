// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/health-enclave/models"

// Queues groups the four missing-item queues of one side.
type Queues struct {
	DocumentsForDevice     *Queue
	DocumentsForTerminal   *Queue
	OnefoldKeysForTerminal *Queue
	TwofoldKeysForTerminal *Queue
}

// NewQueues returns four empty queues.
func NewQueues() *Queues {
	return &Queues{
		DocumentsForDevice:     NewQueue(),
		DocumentsForTerminal:   NewQueue(),
		OnefoldKeysForTerminal: NewQueue(),
		TwofoldKeysForTerminal: NewQueue(),
	}
}

// ByKind returns the queue tracking kind, or nil for an unknown kind.
func (q *Queues) ByKind(kind models.MissingKind) *Queue {
	switch kind {
	case models.MissingDocumentsForDevice:
		return q.DocumentsForDevice
	case models.MissingDocumentsForTerminal:
		return q.DocumentsForTerminal
	case models.MissingOnefoldKeysForTerminal:
		return q.OnefoldKeysForTerminal
	case models.MissingTwofoldKeysForTerminal:
		return q.TwofoldKeysForTerminal
	}
	return nil
}

func (q *Queues) all() []*Queue {
	return []*Queue{q.DocumentsForDevice, q.DocumentsForTerminal, q.OnefoldKeysForTerminal, q.TwofoldKeysForTerminal}
}

// Remove drops id from every queue.
func (q *Queues) Remove(id models.DocumentIdentifier) {
	for _, queue := range q.all() {
		queue.Remove(id)
	}
}

// ResetInFlight requeues in-flight identifiers of every queue.
func (q *Queues) ResetInFlight() {
	for _, queue := range q.all() {
		queue.ResetInFlight()
	}
}
