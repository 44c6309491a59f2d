// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the JSON body written after a successful login.
type SuccessResponse struct {
	Success string `json:"success"`
}
