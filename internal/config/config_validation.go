// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallbacks applied by validate for entries the deployment may reasonably
// omit. Secrets and the DSN have no fallback: their absence is an error.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTokenIssuer    = "storefront-api"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills
// non-security defaults for omitted entries.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise. The signing secret, CSRF derivation key, and database DSN are
// required; the process must not start without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.App.CsrfHashKey == "" {
		return ErrMissingCsrfHashKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
