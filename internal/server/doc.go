// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It provides orchestration for the server lifecycle together with the
// background workers, including startup, signal handling, and graceful
// shutdown.
package server
