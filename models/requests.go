// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the payload of /login and /register.
// ConfirmPassword is only meaningful for registration.
type Credentials struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}

// PostRequest is the payload used to create or edit a post.
type PostRequest struct {
	URL   string `json:"url" form:"url"`
	Title string `json:"title" form:"title"`
}

// ListPostsRequest holds optional paging parameters for the post listing.
// Zero Limit means "no limit".
type ListPostsRequest struct {
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}
