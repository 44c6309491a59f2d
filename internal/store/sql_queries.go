// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"user_id", "email", "password_hash", "created_at"}
	postColumns    = []string{"post_id", "user_id", "url", "title", "created_at", "updated_at"}
	sessionColumns = []string{"session_id", "user_id", "created_at", "expires_at"}
)

func returningClause(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("email", "password_hash", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returningClause(userColumns)).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── posts ─────────────────────────────────────────────────────────────────────

func buildCreatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(models.Post{}.TableName()).
		Columns("user_id", "url", "title", "created_at", "updated_at").
		Values(post.UserID, post.URL, post.Title, post.CreatedAt, post.UpdatedAt).
		Suffix(returningClause(postColumns)).
		ToSql()
}

func buildGetPostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}

// buildListPostsQuery selects posts newest first. SQLite rejects OFFSET
// without LIMIT, so an offset alone gets the largest possible limit. Both
// values are capped at the largest signed 64-bit integer the databases accept.
func buildListPostsQuery(b sq.StatementBuilderType, limit, offset uint64) (string, []any, error) {
	query := b.Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("post_id DESC")

	limit = min(limit, math.MaxInt64)
	offset = min(offset, math.MaxInt64)
	if limit == 0 && offset > 0 {
		limit = math.MaxInt64
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query.ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Update(models.Post{}.TableName()).
		Set("url", post.URL).
		Set("title", post.Title).
		Set("updated_at", post.UpdatedAt).
		Where(sq.Eq{"post_id": post.PostID}).
		Suffix(returningClause(postColumns)).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"post_id": postID}).
		ToSql()
}

// ── sessions ──────────────────────────────────────────────────────────────────

func buildCreateSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(models.Session{}.TableName()).
		Columns(sessionColumns...).
		Values(session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildGetSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, sessionID string) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
