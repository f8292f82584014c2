// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/mock"
	"github.com/MKhiriev/health-enclave/models"
)

func TestDenyWorker_DeniesEveryRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	documents := mock.NewMockDeviceDocumentsService(ctrl)

	requests := make(chan models.AccessRequest, 2)
	requests <- models.AccessRequest{Metadata: models.DocumentMetadata{ID: "first"}}
	requests <- models.AccessRequest{Metadata: models.DocumentMetadata{ID: "second"}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	documents.EXPECT().AccessRequests().Return((<-chan models.AccessRequest)(requests))
	gomock.InOrder(
		documents.EXPECT().DenyAccess(gomock.Any(), models.DocumentIdentifier("first")).Return(errors.New("not connected")),
		documents.EXPECT().DenyAccess(gomock.Any(), models.DocumentIdentifier("second")).DoAndReturn(
			func(context.Context, models.DocumentIdentifier) error {
				cancel()
				return nil
			}),
	)

	done := make(chan error, 1)
	go func() { done <- NewDenyWorker(documents, logger.Nop()).Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestDenyWorker_ClosedRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	documents := mock.NewMockDeviceDocumentsService(ctrl)

	requests := make(chan models.AccessRequest)
	close(requests)
	documents.EXPECT().AccessRequests().Return((<-chan models.AccessRequest)(requests))

	assert.NoError(t, NewDenyWorker(documents, logger.Nop()).Run(context.Background()))
}
