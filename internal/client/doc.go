// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line blog client.
//
// It maps cobra sub-commands onto [adapter.BlogAdapter] calls and keeps the
// session cookie in a file between invocations, so a user logs in once and
// later commands run as that user.
package client
