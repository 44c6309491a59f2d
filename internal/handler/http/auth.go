// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, ok := requestBodyFromContext[models.Credentials](ctx)
	if !ok {
		writeError(w, r, ErrInvalidRequestBody)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.startSession(w, r, registeredUser) {
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered and logged in")
	utils.WriteJSON(w, models.SuccessResponse{Success: msgRegistered}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, ok := requestBodyFromContext[models.Credentials](ctx)
	if !ok {
		writeError(w, r, ErrInvalidRequestBody)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// a previous session of this browser is replaced
	if session, ok := utils.GetSessionFromContext(ctx); ok {
		if cookie, err := r.Cookie(h.cookie.name); err == nil {
			if err := h.services.SessionService.DestroySession(ctx, cookie.Value); err != nil {
				log.Err(err).Int64("user_id", session.UserID).Msg("error destroying previous session")
			}
		}
	}

	if !h.startSession(w, r, foundUser) {
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.SuccessResponse{Success: msgLoggedIn}, http.StatusOK)
}

// startSession creates a session for user and sets the cookie. It reports
// whether the response may continue.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	_, token, err := h.services.SessionService.CreateSession(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	h.setSessionCookie(w, token)
	return true
}

// logout destroys the current session. Logging out without a session is not
// an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie.name); err == nil && cookie.Value != "" {
		err := h.services.SessionService.DestroySession(r.Context(), cookie.Value)
		if err != nil && !errors.Is(err, service.ErrSessionExpiredOrInvalid) {
			writeError(w, r, err)
			return
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.SuccessResponse{Success: msgLoggedOut}, http.StatusOK)
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
