// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrAccountAlreadyExists = errors.New("account with that email address already exists")
	ErrEmailNotFound        = errors.New("email not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")

	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")
	ErrSessionCreationFailed   = errors.New("session creation failed")

	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("only the author can modify this post")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// EmailNotFoundError is returned by Login when no account uses the e-mail.
// It matches ErrEmailNotFound with errors.Is.
type EmailNotFoundError struct {
	Email string
}

func (e *EmailNotFoundError) Error() string {
	return fmt.Sprintf("email %s not found", e.Email)
}

func (e *EmailNotFoundError) Is(target error) bool {
	return target == ErrEmailNotFound
}
