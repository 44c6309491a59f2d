// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for incoming API requests.
//
// Core concepts:
//   - Validator: validates a request payload against the rule chain selected
//     by a [models.ActionType].
//   - Rule chains are ordered. Only the message of the first failing rule is
//     reported, wrapped in a *ValidationError.
//
// Rules are expressed as go-playground/validator tags, extended with the
// custom "isurl" and "allowlisted" tags.
package validators

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// Validator validates request payloads against action-specific rule chains.
type Validator interface {

	// Validate checks obj against the chain registered for action.
	// Returns a *ValidationError for rejected input, ErrUnsupportedAction for
	// an unknown action and ErrUnsupportedType for a payload the chain
	// cannot read.
	Validate(ctx context.Context, action models.ActionType, obj any) error
}
