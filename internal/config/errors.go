package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when configuration groups are incomplete or invalid.
var (
	// ErrInvalidRelayConfigs indicates invalid relay settings
	// (for example, a zero request timeout).
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
	// ErrInvalidDirectionConfigs indicates an invalid upload or download
	// policy (unknown clipboard type or negative size ceiling).
	ErrInvalidDirectionConfigs = errors.New("invalid sync direction configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty sync directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
