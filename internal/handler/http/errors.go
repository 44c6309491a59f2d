// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrUnauthorized is returned when a protected route is called without a
	// live session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRequestBody is returned when the body cannot be decoded as
	// JSON, urlencoded or multipart form.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrUnsupportedContentType is returned for bodies in any other format.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrInvalidPostID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrInvalidPagination is returned for malformed limit or offset query
	// parameters.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// Messages written to clients.
const (
	msgServerError = "server error"
	msgNotFound    = "not found"
	msgLoggedIn    = "success! you are logged in"
	msgLoggedOut   = "success! you are logged out"
	msgRegistered  = "success! your account is created"
	msgPostDeleted = "post deleted"
)
