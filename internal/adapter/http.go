// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type httpBlogAdapter struct {
	client     *utils.HTTPClient
	baseURL    *url.URL
	cookieName string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs an HTTP/REST implementation of [BlogAdapter].
// It normalises and validates cfg.ServerAddress and configures the underlying
// HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBlogAdapter(cfg config.ClientConfig, logger *logger.Logger) (BlogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}

	return &httpBlogAdapter{
		client:     utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL:    u,
		cookieName: cfg.SessionCookieName,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSessionToken implements [BlogAdapter]. It places the token into the
// cookie jar so it is sent with every following request. An empty token
// drops the stored cookie.
func (h *httpBlogAdapter) SetSessionToken(token string) {
	cookie := &http.Cookie{
		Name:  h.cookieName,
		Value: strings.TrimSpace(token),
		Path:  "/",
	}
	if cookie.Value == "" {
		cookie.MaxAge = -1
	}

	h.client.Jar().SetCookies(h.baseURL, []*http.Cookie{cookie})
}

// SessionToken implements [BlogAdapter].
func (h *httpBlogAdapter) SessionToken() string {
	for _, c := range h.client.Jar().Cookies(h.baseURL) {
		if c.Name == h.cookieName {
			return c.Value
		}
	}
	return ""
}

// Register implements [BlogAdapter]. It POSTs the credentials to /register.
// The server logs the new user in, so the session cookie is kept by the jar.
func (h *httpBlogAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [BlogAdapter]. It POSTs the credentials to /login.
func (h *httpBlogAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [BlogAdapter]. The server expires the cookie, which
// removes it from the jar.
func (h *httpBlogAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Account implements [BlogAdapter]. It returns the user owning the current
// session, or [ErrUnauthorized] when there is none.
func (h *httpBlogAdapter) Account(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/account")
	if err != nil {
		return models.User{}, fmt.Errorf("account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListPosts implements [BlogAdapter]. Zero limit and offset are left to the
// server defaults.
func (h *httpBlogAdapter) ListPosts(ctx context.Context, request models.ListPostsRequest) ([]models.Post, error) {
	var posts []models.Post

	req := h.client.R().
		SetContext(ctx).
		SetResult(&posts)
	if request.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(request.Limit, 10))
	}
	if request.Offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(request.Offset, 10))
	}

	resp, err := req.Get("/post")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost implements [BlogAdapter].
func (h *httpBlogAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&post).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Get("/post/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// CreatePost implements [BlogAdapter]. Requires a logged-in session.
func (h *httpBlogAdapter) CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&post).
		Post("/post")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// UpdatePost implements [BlogAdapter]. Only the author of the post may
// update it; other users get [ErrForbidden].
func (h *httpBlogAdapter) UpdatePost(ctx context.Context, postID int64, request models.PostRequest) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&post).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Put("/post/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// DeletePost implements [BlogAdapter].
func (h *httpBlogAdapter) DeletePost(ctx context.Context, postID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Delete("/post/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

// ServerVersion implements [BlogAdapter]. It returns the plain-text body of
// GET /version.
func (h *httpBlogAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}
