// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// ListPosts returns posts newest first.
func (p *postService) ListPosts(ctx context.Context, request models.ListPostsRequest) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx, request.Limit, request.Offset)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post: %w", err)
	}

	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, userID int64, request models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.Post{}, ErrInvalidDataProvided
	}

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		UserID: userID,
		URL:    strings.TrimSpace(request.URL),
		Title:  strings.TrimSpace(request.Title),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error creating post")
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	log.Info().Int64("post_id", post.PostID).Int64("user_id", userID).Msg("post created")
	return post, nil
}

// UpdatePost replaces URL and title of a post owned by userID.
func (p *postService) UpdatePost(ctx context.Context, userID, postID int64, request models.PostRequest) (models.Post, error) {
	post, err := p.ownedPost(ctx, userID, postID)
	if err != nil {
		return models.Post{}, err
	}

	post.URL = strings.TrimSpace(request.URL)
	post.Title = strings.TrimSpace(request.Title)

	updated, err := p.postRepository.UpdatePost(ctx, post)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("error updating post: %w", err)
	}

	return updated, nil
}

// DeletePost removes a post owned by userID.
func (p *postService) DeletePost(ctx context.Context, userID, postID int64) error {
	if _, err := p.ownedPost(ctx, userID, postID); err != nil {
		return err
	}

	err := p.postRepository.DeletePost(ctx, postID)
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("post_id", postID).Int64("user_id", userID).Msg("post deleted")
	return nil
}

func (p *postService) ownedPost(ctx context.Context, userID, postID int64) (models.Post, error) {
	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if post.UserID != userID {
		logger.FromContext(ctx).Warn().
			Int64("post_id", postID).
			Int64("user_id", userID).
			Int64("author_id", post.UserID).
			Msg("post modification by non-author rejected")
		return models.Post{}, ErrForbidden
	}

	return post, nil
}
