// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/service"
)

// SessionCleanupWorker periodically deletes expired login sessions.
type SessionCleanupWorker struct {
	sessionService service.SessionService
	interval       time.Duration

	logger *logger.Logger
}

func NewSessionCleanupWorker(sessionService service.SessionService, interval time.Duration, logger *logger.Logger) *SessionCleanupWorker {
	return &SessionCleanupWorker{
		sessionService: sessionService,
		interval:       interval,
		logger:         logger,
	}
}

// Run cleans up once at start and then every interval until ctx is done.
func (w *SessionCleanupWorker) Run(ctx context.Context) {
	w.cleanup(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("session cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *SessionCleanupWorker) cleanup(ctx context.Context) {
	removed, err := w.sessionService.CleanupExpired(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*SessionCleanupWorker.cleanup").Msg("error removing expired sessions")
		return
	}

	metrics.RecordExpiredSessionsRemoved(removed)
	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Msg("expired sessions removed")
	}
}
