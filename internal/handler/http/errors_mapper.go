// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusList is checked in order; the first match wins.
var errorStatusList = []errorStatus{
	{validators.ErrInvalidInput, http.StatusBadRequest},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrUnsupportedContentType, http.StatusUnsupportedMediaType},
	{ErrInvalidPostID, http.StatusNotFound},
	{ErrInvalidPagination, http.StatusBadRequest},
	{ErrUnauthorized, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrAccountAlreadyExists, http.StatusBadRequest},
	{service.ErrEmailNotFound, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrUserNotFound, http.StatusUnauthorized},
	{service.ErrSessionExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrForbidden, http.StatusForbidden},
}

func statusFromError(err error) int {
	for _, e := range errorStatusList {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Internal
// failures never leak their details.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return msgServerError
	case http.StatusNotFound:
		return msgNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized.Error()
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	var emailNotFound *service.EmailNotFoundError
	if errors.As(err, &emailNotFound) {
		return emailNotFound.Error()
	}

	for _, e := range errorStatusList {
		if errors.Is(err, e.target) {
			return e.target.Error()
		}
	}
	return err.Error()
}

// writeError logs err and writes it as {"error": "..."} with the mapped status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	writeJSONError(w, messageFromError(err, status), status)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
