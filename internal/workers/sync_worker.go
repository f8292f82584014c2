// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/logger"
)

// SyncWorker keeps the device connected to its terminal. Every ended session
// is followed by a redial after an exponentially growing delay; a session
// that outlived the current delay resets it.
type SyncWorker struct {
	syncer Syncer

	interval    time.Duration
	maxInterval time.Duration

	after func(time.Duration) <-chan time.Time

	logger *logger.Logger
}

func NewSyncWorker(syncer Syncer, cfg config.Workers, logger *logger.Logger) *SyncWorker {
	interval := cfg.ReconnectInterval
	if interval <= 0 {
		interval = config.DefaultReconnectInterval
	}
	maxInterval := cfg.MaxReconnectInterval
	if maxInterval < interval {
		maxInterval = interval
	}

	return &SyncWorker{
		syncer:      syncer,
		interval:    interval,
		maxInterval: maxInterval,
		after:       time.After,
		logger:      logger,
	}
}

// Run redials until ctx is cancelled. Session errors are logged, never
// returned.
func (w *SyncWorker) Run(ctx context.Context) error {
	delay := w.interval

	for {
		started := time.Now()
		err := w.syncer.Sync(ctx)
		if ctx.Err() != nil {
			return nil
		}

		if time.Since(started) > delay {
			delay = w.interval
		}

		w.logger.Warn().
			Err(err).
			Str("func", "SyncWorker.Run").
			Dur("retry_in", delay).
			Msg("session with terminal ended")

		select {
		case <-ctx.Done():
			return nil
		case <-w.after(delay):
		}

		delay = min(delay*2, w.maxInterval)
	}
}
