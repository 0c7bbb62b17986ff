// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "go-note-keeper"
	defaultTokenDuration  = 72 * time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultSQLitePath     = "notes.db"
)

// applyDefaults fills in safe defaults for optional fields left unset by
// every configuration source. Secrets are never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.SQLitePath == "" {
		cfg.Storage.DB.SQLitePath = defaultSQLitePath
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
