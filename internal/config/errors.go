package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration entries are missing or malformed. Startup fails fast on
// any of them.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingCsrfHashKey indicates that no CSRF derivation key was
	// provided by any configuration source.
	ErrMissingCsrfHashKey = errors.New("csrf hash key is not configured")
	// ErrMissingDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDSN = errors.New("database DSN is not configured")
)
