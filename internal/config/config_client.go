// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line blog client.
type ClientConfig struct {
	// ServerAddress is the base URL of the blog server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile stores the session cookie between invocations.
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`

	// SessionCookieName must match the server's APP_SESSION_COOKIE_NAME.
	// Env: CLIENT_SESSION_COOKIE_NAME
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the client configuration from environment variables
// and fills the remaining fields with defaults.
func GetClientConfig() (*ClientConfig, error) {
	var e clientEnv
	if err := parseEnv(&e); err != nil {
		return nil, err
	}

	cfg := e.Client
	if err := mergo.Merge(&cfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return &cfg, nil
}

func defaultClientConfig() ClientConfig {
	sessionFile := ".go-blog-session"
	if home, err := os.UserHomeDir(); err == nil {
		sessionFile = filepath.Join(home, sessionFile)
	}

	return ClientConfig{
		ServerAddress:  "http://localhost:3000",
		RequestTimeout: 10 * time.Second,
		SessionFile:    sessionFile,

		SessionCookieName: defaultSessionCookieName,
	}
}
