// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ActionType selects the validation chain applied to an incoming request.
type ActionType int

const (
	// ActionLogin validates credentials submitted to /login.
	ActionLogin ActionType = iota + 1

	// ActionRegister validates credentials submitted to /register.
	ActionRegister

	// ActionCreatePost validates a new post.
	ActionCreatePost

	// ActionUpdatePost validates an edit of an existing post.
	ActionUpdatePost
)

func (a ActionType) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionRegister:
		return "register"
	case ActionCreatePost:
		return "create_post"
	case ActionUpdatePost:
		return "update_post"
	default:
		return "unknown"
	}
}
