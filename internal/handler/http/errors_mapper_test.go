// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", &validators.ValidationError{Field: "url", Message: "incorrect url"}, http.StatusBadRequest, "incorrect url"},
		{"bad body", fmt.Errorf("%w: eof", ErrInvalidRequestBody), http.StatusBadRequest, "invalid request body"},
		{"content type", ErrUnsupportedContentType, http.StatusUnsupportedMediaType, "unsupported content type"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"expired session", service.ErrSessionExpiredOrInvalid, http.StatusUnauthorized, "unauthorized"},
		{"account exists", service.ErrAccountAlreadyExists, http.StatusBadRequest, "account with that email address already exists"},
		{"email not found", &service.EmailNotFoundError{Email: "x@y.z"}, http.StatusBadRequest, "email x@y.z not found"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusBadRequest, "invalid email or password"},
		{"post missing", fmt.Errorf("wrapped: %w", service.ErrPostNotFound), http.StatusNotFound, "not found"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "only the author can modify this post"},
		{"store failure", fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("conn reset")), http.StatusInternalServerError, "server error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err, status))
		})
	}
}
