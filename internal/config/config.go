// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source is merged.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRetryCount     = 0
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container for the
// tfinspect tool. It is populated by merging defaults, an optional JSON or
// YAML file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Repository holds the location of the version-control server and the
	// outbound request settings used by the artifact resolver.
	Repository Repository `envPrefix:"REPOSITORY_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `env:"CONFIG"`
}

// Repository holds settings for talking to the version-control server.
type Repository struct {
	// URL is the collection root of the server
	// (e.g. "http://tfs:8080/tfs/DefaultCollection").
	// Env: REPOSITORY_URL
	URL string `env:"URL"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: REPOSITORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries for a failed request.
	// Env: REPOSITORY_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Repository: Repository{
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Defaults
//  2. JSON or YAML file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags (values previously bound with [BindFlags])
//
// flags may be nil when no flag set is in use.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}

