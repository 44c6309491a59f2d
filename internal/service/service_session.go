// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// sessionIssuer is the "iss" claim of every session token.
const sessionIssuer = "go-blog"

// sessionService keeps login sessions in the database. The cookie carries a
// signed token whose subject is a random session ID; only an HMAC of that ID
// is stored.
type sessionService struct {
	sessionRepository store.SessionRepository

	secret string
	ttl    time.Duration
	now    func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		secret:            cfg.SessionSecret,
		ttl:               cfg.SessionTTL,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, user models.User) (models.Session, string, error) {
	log := logger.FromContext(ctx)

	sessionID, err := utils.NewSessionID()
	if err != nil {
		return models.Session{}, "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	now := s.now()
	session := models.Session{
		SessionID: utils.HashString(sessionID, s.secret),
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error saving session")
		return models.Session{}, "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	token, err := utils.GenerateSessionToken(sessionIssuer, sessionID, s.ttl, s.secret)
	if err != nil {
		return models.Session{}, "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, token, nil
}

// ResolveSession returns the live session referenced by token. Invalid,
// unknown and expired sessions all yield ErrSessionExpiredOrInvalid.
func (s *sessionService) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	sessionID, err := utils.ParseSessionToken(token, s.secret, sessionIssuer)
	if err != nil {
		return models.Session{}, ErrSessionExpiredOrInvalid
	}

	session, err := s.sessionRepository.GetSession(ctx, utils.HashString(sessionID, s.secret))
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrSessionExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Msg("error loading session")
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err := s.sessionRepository.DeleteSession(ctx, session.SessionID); err != nil && !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Msg("error deleting expired session")
		}
		return models.Session{}, ErrSessionExpiredOrInvalid
	}

	return session, nil
}

// DestroySession deletes the session referenced by token. Destroying an
// already removed session is not an error.
func (s *sessionService) DestroySession(ctx context.Context, token string) error {
	sessionID, err := utils.ParseSessionToken(token, s.secret, sessionIssuer)
	if err != nil {
		return ErrSessionExpiredOrInvalid
	}

	err = s.sessionRepository.DeleteSession(ctx, utils.HashString(sessionID, s.secret))
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (s *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error cleaning up expired sessions: %w", err)
	}

	return removed, nil
}
