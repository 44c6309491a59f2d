// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the blog HTTP API.
//
// [BlogAdapter] hides the REST details from the command-line client. The
// session cookie issued by the server is kept in a cookie jar and can be
// exported with [BlogAdapter.SessionToken] to survive between invocations.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// BlogAdapter defines communication with the blog server.
type BlogAdapter interface {
	// SetSessionToken restores a session cookie saved by a previous run.
	SetSessionToken(token string)

	// SessionToken returns the current session cookie value, or an empty
	// string when logged out.
	SessionToken() string

	Register(ctx context.Context, credentials models.Credentials) error
	Login(ctx context.Context, credentials models.Credentials) error
	Logout(ctx context.Context) error
	Account(ctx context.Context) (models.User, error)

	ListPosts(ctx context.Context, request models.ListPostsRequest) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, request models.PostRequest) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error

	ServerVersion(ctx context.Context) (string, error)
}
