// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the blog: account
// registration and login, login sessions, and post management.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

type AuthService interface {
	// RegisterUser checks that the e-mail is unused, then creates the account.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type SessionService interface {
	// CreateSession starts a session for user and returns it together with
	// the signed token to be stored in the session cookie.
	CreateSession(ctx context.Context, user models.User) (models.Session, string, error)
	ResolveSession(ctx context.Context, token string) (models.Session, error)
	DestroySession(ctx context.Context, token string) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type PostService interface {
	ListPosts(ctx context.Context, request models.ListPostsRequest) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, userID int64, request models.PostRequest) (models.Post, error)
	UpdatePost(ctx context.Context, userID, postID int64, request models.PostRequest) (models.Post, error)
	DeletePost(ctx context.Context, userID, postID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
