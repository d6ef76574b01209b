// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultBaseURL is the production Broadcast service root.
const DefaultBaseURL = "https://svc.aebroadcast.com.br/"

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, an optional
// JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix is the prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       is the direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Feed holds the Broadcast connection settings and credentials.
	Feed Feed `envPrefix:"BROADCAST_"`

	// Quote holds defaults for quote requests issued by the CLI.
	Quote Quote `envPrefix:"QUOTE_"`

	// Workers holds the schedule of the session keeper and quote poller.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FakeFeed holds settings of the local fake Broadcast service.
	FakeFeed FakeFeed `envPrefix:"FAKEFEED_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional command-line arguments left after flag
	// parsing (command name and its operands).
	Args []string
}

// Feed holds the connection settings of the Broadcast datafeed client.
type Feed struct {
	// BaseURL is the service root.
	// Env: BROADCAST_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Username is the Broadcast login.
	// Env: BROADCAST_USERNAME
	Username string `env:"USERNAME"`

	// Password is the Broadcast password. Must be kept confidential.
	// Env: BROADCAST_PASSWORD
	Password string `env:"PASSWORD"`

	// KeepAlive issues one keep-alive call right after login.
	// Env: BROADCAST_KEEP_ALIVE
	KeepAlive bool `env:"KEEP_ALIVE"`

	// InsecureSkipVerify disables TLS certificate verification.
	// Unsafe; intended for development against self-signed endpoints only.
	// Env: BROADCAST_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// CABundlePath is an optional PEM file whose certificates are trusted
	// in addition to the system pool.
	// Env: BROADCAST_CA_BUNDLE
	CABundlePath string `env:"CA_BUNDLE"`

	// RequestTimeout bounds a single exchange. Zero waits indefinitely.
	// Env: BROADCAST_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Quote holds quote request defaults.
type Quote struct {
	// Fields restricts quotes to the listed fields (e.g. ULT,VAR).
	// Empty requests every field.
	// Env: QUOTE_FIELDS
	Fields []string `env:"FIELDS" envSeparator:","`
}

// Workers holds the schedule of background jobs run by `datafeed watch`.
type Workers struct {
	// KeepAliveInterval is the period between keep-alive calls.
	// Env: WORKERS_KEEP_ALIVE_INTERVAL
	KeepAliveInterval time.Duration `env:"KEEP_ALIVE_INTERVAL"`

	// RefreshInterval is the period between token refreshes.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// RefreshBefore triggers an early refresh when a JWT access token
	// expires within this window.
	// Env: WORKERS_REFRESH_BEFORE
	RefreshBefore time.Duration `env:"REFRESH_BEFORE"`

	// PollInterval is the period between quote polls.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// FakeFeed holds settings of the local fake Broadcast service.
type FakeFeed struct {
	// Address is the listen address in host:port form.
	// Env: FAKEFEED_ADDRESS
	Address string `env:"ADDRESS"`

	// Username and Password are the single account accepted by the fake.
	// Env: FAKEFEED_USERNAME, FAKEFEED_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// TokenSignKey signs issued JWTs. Must be kept confidential.
	// Env: FAKEFEED_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: FAKEFEED_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued access tokens.
	// Env: FAKEFEED_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Default returns the built-in defaults, the lowest-priority source.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Feed: Feed{
			BaseURL: DefaultBaseURL,
		},
		Workers: Workers{
			KeepAliveInterval: 5 * time.Minute,
			RefreshInterval:   15 * time.Minute,
			RefreshBefore:     time.Minute,
			PollInterval:      10 * time.Second,
		},
		Log: Log{Level: "info"},
		FakeFeed: FakeFeed{
			Address:       "localhost:8089",
			Username:      "datafeed",
			Password:      "datafeed",
			TokenIssuer:   "fakefeed",
			TokenDuration: 30 * time.Minute,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// for the given command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
