package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAppConfigs indicates missing or out-of-range application
	// settings (token sign key, record-ID pad width, bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configs")
)
