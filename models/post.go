// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a single blog entry. Every post links to an external URL and
// optionally carries a human-readable title.
type Post struct {
	// PostID is the server-assigned identifier. Larger IDs are newer.
	PostID int64 `json:"id"`

	// UserID is the author of the post. Only the author may edit or delete it.
	UserID int64 `json:"user_id"`

	// URL is the link the post points to.
	URL string `json:"url"`

	// Title is an optional caption for the link.
	Title string `json:"title,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
