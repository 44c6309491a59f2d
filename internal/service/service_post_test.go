// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostService(t *testing.T) (PostService, *mock.MockPostRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)

	return NewPostService(repo, logger.Nop()), repo
}

func TestListPosts(t *testing.T) {
	svc, repo := newTestPostService(t)
	ctx := context.Background()

	posts := []models.Post{{PostID: 2}, {PostID: 1}}
	repo.EXPECT().ListPosts(ctx, uint64(10), uint64(5)).Return(posts, nil)

	got, err := svc.ListPosts(ctx, models.ListPostsRequest{Limit: 10, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestListPosts_Error(t *testing.T) {
	svc, repo := newTestPostService(t)

	repo.EXPECT().ListPosts(gomock.Any(), uint64(0), uint64(0)).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListPosts(context.Background(), models.ListPostsRequest{})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestGetPost_NotFound(t *testing.T) {
	svc, repo := newTestPostService(t)

	repo.EXPECT().GetPost(gomock.Any(), int64(9)).Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.GetPost(context.Background(), 9)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCreatePost(t *testing.T) {
	svc, repo := newTestPostService(t)
	ctx := context.Background()

	repo.EXPECT().
		CreatePost(ctx, models.Post{UserID: 4, URL: "https://go.dev", Title: "Go"}).
		Return(models.Post{PostID: 1, UserID: 4, URL: "https://go.dev", Title: "Go"}, nil)

	post, err := svc.CreatePost(ctx, 4, models.PostRequest{URL: " https://go.dev ", Title: "Go "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.PostID)
}

func TestCreatePost_NoUser(t *testing.T) {
	svc, _ := newTestPostService(t)

	_, err := svc.CreatePost(context.Background(), 0, models.PostRequest{URL: "https://go.dev"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdatePost(t *testing.T) {
	existing := models.Post{PostID: 1, UserID: 4, URL: "https://old.example", Title: "old"}

	tests := []struct {
		name    string
		userID  int64
		setup   func(repo *mock.MockPostRepository)
		wantErr error
	}{
		{
			name:   "author updates",
			userID: 4,
			setup: func(repo *mock.MockPostRepository) {
				repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(existing, nil)
				repo.EXPECT().
					UpdatePost(gomock.Any(), models.Post{PostID: 1, UserID: 4, URL: "https://new.example", Title: "new"}).
					Return(models.Post{PostID: 1, UserID: 4, URL: "https://new.example", Title: "new"}, nil)
			},
		},
		{
			name:   "other user is forbidden",
			userID: 5,
			setup: func(repo *mock.MockPostRepository) {
				repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(existing, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "missing post",
			userID: 4,
			setup: func(repo *mock.MockPostRepository) {
				repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(models.Post{}, store.ErrPostNotFound)
			},
			wantErr: ErrPostNotFound,
		},
		{
			name:   "deleted between read and write",
			userID: 4,
			setup: func(repo *mock.MockPostRepository) {
				repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(existing, nil)
				repo.EXPECT().UpdatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrPostNotFound)
			},
			wantErr: ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestPostService(t)
			tt.setup(repo)

			post, err := svc.UpdatePost(context.Background(), tt.userID, 1, models.PostRequest{URL: "https://new.example", Title: "new"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new", post.Title)
		})
	}
}

func TestDeletePost(t *testing.T) {
	existing := models.Post{PostID: 1, UserID: 4}

	t.Run("author deletes", func(t *testing.T) {
		svc, repo := newTestPostService(t)
		repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(existing, nil)
		repo.EXPECT().DeletePost(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, svc.DeletePost(context.Background(), 4, 1))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, repo := newTestPostService(t)
		repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(existing, nil)

		assert.ErrorIs(t, svc.DeletePost(context.Background(), 5, 1), ErrForbidden)
	})

	t.Run("missing post", func(t *testing.T) {
		svc, repo := newTestPostService(t)
		repo.EXPECT().GetPost(gomock.Any(), int64(1)).Return(models.Post{}, store.ErrPostNotFound)

		assert.ErrorIs(t, svc.DeletePost(context.Background(), 4, 1), ErrPostNotFound)
	})
}
