// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	getUserFn      func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

// mockSessionService resolves validSessionToken to a session of
// testUserID unless resolveSessionFn is set.
type mockSessionService struct {
	createSessionFn  func(ctx context.Context, user models.User) (models.Session, string, error)
	resolveSessionFn func(ctx context.Context, token string) (models.Session, error)
	destroySessionFn func(ctx context.Context, token string) error
}

func (m *mockSessionService) CreateSession(ctx context.Context, user models.User) (models.Session, string, error) {
	return m.createSessionFn(ctx, user)
}

func (m *mockSessionService) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	if m.resolveSessionFn != nil {
		return m.resolveSessionFn(ctx, token)
	}
	if token == validSessionToken {
		return models.Session{SessionID: "hashed", UserID: testUserID, ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	return models.Session{}, service.ErrSessionExpiredOrInvalid
}

func (m *mockSessionService) DestroySession(ctx context.Context, token string) error {
	return m.destroySessionFn(ctx, token)
}

func (m *mockSessionService) CleanupExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockPostService struct {
	listPostsFn  func(ctx context.Context, request models.ListPostsRequest) ([]models.Post, error)
	getPostFn    func(ctx context.Context, postID int64) (models.Post, error)
	createPostFn func(ctx context.Context, userID int64, request models.PostRequest) (models.Post, error)
	updatePostFn func(ctx context.Context, userID, postID int64, request models.PostRequest) (models.Post, error)
	deletePostFn func(ctx context.Context, userID, postID int64) error
}

func (m *mockPostService) ListPosts(ctx context.Context, request models.ListPostsRequest) ([]models.Post, error) {
	return m.listPostsFn(ctx, request)
}

func (m *mockPostService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	return m.getPostFn(ctx, postID)
}

func (m *mockPostService) CreatePost(ctx context.Context, userID int64, request models.PostRequest) (models.Post, error) {
	return m.createPostFn(ctx, userID, request)
}

func (m *mockPostService) UpdatePost(ctx context.Context, userID, postID int64, request models.PostRequest) (models.Post, error) {
	return m.updatePostFn(ctx, userID, postID, request)
}

func (m *mockPostService) DeletePost(ctx context.Context, userID, postID int64) error {
	return m.deletePostFn(ctx, userID, postID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testCookieName    = "blog.sid"
	validSessionToken = "valid-session-token"
	testUserID        = int64(7)
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			SessionCookieName: testCookieName,
			SessionTTL:        time.Hour,
		},
		Server: config.Server{
			RateLimitRequests: 1000,
			RateLimitWindow:   time.Minute,
		},
	}
}

// newTestHandler builds a Handler with the real validator. Services left
// nil in svcs get harmless defaults.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return newTestHandlerWithConfig(t, svcs, testConfig(), nil)
}

func newTestHandlerWithConfig(t *testing.T, svcs *service.Services, cfg config.StructuredConfig, allowlist []string) *Handler {
	t.Helper()

	validator, err := validators.NewActionValidator(allowlist)
	require.NoError(t, err)

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.SessionService == nil {
		svcs.SessionService = &mockSessionService{}
	}

	return NewHandler(svcs, validator, cfg, logger.Nop())
}

// serve runs req through the full router of h.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSessionCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: validSessionToken})
	return req
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Error
}

func decodeSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Success
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
