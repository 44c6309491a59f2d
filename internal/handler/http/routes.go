// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(withSecurityHeaders)
	router.Use(h.withCORS())

	// promhttp negotiates its own compression
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withSession)

		r.Get("/version", h.getServerVersion)

		// auth
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit())

			r.With(validateRequest[models.Credentials](h, models.ActionLogin)).Post("/login", h.login)
			r.With(validateRequest[models.Credentials](h, models.ActionRegister)).Post("/register", h.register)
			r.With(validateRequest[models.Credentials](h, models.ActionRegister)).Post("/signup", h.register)
		})
		r.Get("/logout", h.logout)
		r.With(h.requireAuth).Get("/account", h.account)

		// posts
		r.Route("/post", func(r chi.Router) {
			r.Get("/", h.listPosts)
			r.Get("/{id}", h.getPost)

			// validation runs before the authentication check
			r.With(validateRequest[models.PostRequest](h, models.ActionCreatePost), h.requireAuth).Post("/", h.createPost)
			r.With(validateRequest[models.PostRequest](h, models.ActionUpdatePost), h.requireAuth).Put("/{id}", h.updatePost)
			r.With(h.requireAuth).Delete("/{id}", h.deletePost)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
