// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	cfg := testConfig()
	cfg.App.SessionCookieSecure = true

	h := NewHandler(svcs, nil, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, cookieSettings{name: testCookieName, secure: true, ttl: cfg.App.SessionTTL}, h.cookie)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register. Protected
// routes answer 400 or 401, which still proves they exist.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/version"},
	{http.MethodGet, "/metrics"},
	{http.MethodPost, "/login"},
	{http.MethodPost, "/register"},
	{http.MethodPost, "/signup"},
	{http.MethodGet, "/logout"},
	{http.MethodGet, "/account"},
	{http.MethodPost, "/post"},
	{http.MethodPut, "/post/1"},
	{http.MethodDelete, "/post/1"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code, "route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range []routeCase{
		{http.MethodPost, "/version"},
		{http.MethodPost, "/logout"},
		{http.MethodPatch, "/post/1"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &mockAppInfoService{version: "1.2.3"}})

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
