// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType   = errors.New("unsupported type for validation")
	ErrUnsupportedAction = errors.New("unsupported action for validation")
	ErrUnknownField      = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports the first rule of a chain that rejected the input.
// Message is safe to return to API clients as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
