package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSecrets indicates that one or both token signing
	// secrets were not supplied. The token service cannot issue or verify
	// anything without them, so startup is aborted.
	ErrMissingTokenSecrets = errors.New("missing token signing secrets")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
