// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Driver names accepted in [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const defaultSessionCookieName = "blog.sid"

// defaultConfig returns the values used for every field left empty by the
// other configuration sources.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL:        14 * 24 * time.Hour,
			SessionCookieName: defaultSessionCookieName,
			BcryptCost:        10,
			Version:           "dev",
			LogLevel:          "debug",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:       "localhost:3000",
			RequestTimeout:    30 * time.Second,
			RateLimitRequests: 20,
			RateLimitWindow:   time.Minute,
		},
		Workers: Workers{
			SessionCleanupInterval: 10 * time.Minute,
		},
	}
}
