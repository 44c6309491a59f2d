// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// listPosts answers GET /post with posts newest first.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := paginationFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPosts(r.Context(), models.ListPostsRequest{Limit: limit, Offset: offset})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}
	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	request, ok := requestBodyFromContext[models.PostRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidRequestBody)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, ok := requestBodyFromContext[models.PostRequest](ctx)
	if !ok {
		writeError(w, r, ErrInvalidRequestBody)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, userID, postID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrUnauthorized)
		return
	}

	postID, err := postIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.PostService.DeletePost(ctx, userID, postID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: msgPostDeleted}, http.StatusOK)
}
