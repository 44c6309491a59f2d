// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/models"
)

// validateRequest decodes the body into T and runs the validation chain of
// action on it. Rejected input is answered with 400 and the message of the
// first failing rule. Accepted bodies are stored in the request context and
// read back by handlers with requestBodyFromContext.
func validateRequest[T any](h *Handler, action models.ActionType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := decodeRequest(w, r, &body); err != nil {
				writeError(w, r, err)
				return
			}

			if err := h.validator.Validate(r.Context(), action, body); err != nil {
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withRequestBody(r.Context(), body)))
		})
	}
}
