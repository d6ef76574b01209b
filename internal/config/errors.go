package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidFeedConfigs indicates invalid Broadcast connection settings
	// (for example, missing credentials or a relative base URL).
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero keep-alive interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidFakeFeedConfigs indicates invalid fake feed server settings.
	ErrInvalidFakeFeedConfigs = errors.New("invalid fakefeed configuration")
)
