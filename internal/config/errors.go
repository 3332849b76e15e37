package config

import "errors"

// Validation errors returned by [GetClientConfig] when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, an unparsable backend URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a zero health interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
