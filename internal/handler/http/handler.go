// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// cookieSettings describes the session cookie issued on login and register.
type cookieSettings struct {
	name   string
	secure bool
	ttl    time.Duration
}

type Handler struct {
	services  *service.Services
	validator validators.Validator

	cookie cookieSettings
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		cookie: cookieSettings{
			name:   cfg.App.SessionCookieName,
			secure: cfg.App.SessionCookieSecure,
			ttl:    cfg.App.SessionTTL,
		},
		server: cfg.Server,
		logger: logger,
	}
}
