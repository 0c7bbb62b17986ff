package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrNoTokenSignKey indicates the token signing secret is missing.
	// The session core cannot issue or verify tokens without it.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidAuthConfigs indicates invalid auth settings
	// (for example, a negative token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
