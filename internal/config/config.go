// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogFile is the path of the JSON log file. Empty means "logs" next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version overrides the build version shown in the version window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the HTTP adapter talking to the session backend.
type Adapter struct {
	// BackendURL is the base URL of the session backend
	// (e.g. "http://localhost:8001"). A missing scheme defaults to http.
	// Env: ADAPTER_BACKEND_URL
	BackendURL string `env:"BACKEND_URL"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HealthInterval is the period of the backend health probe.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Defaults applied to fields that no source has set.
const (
	DefaultBackendURL     = "http://localhost:8001"
	DefaultRequestTimeout = 10 * time.Second
	DefaultHealthInterval = 15 * time.Second
	DefaultDotEnvFile     = ".env"
)

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BackendURL:     DefaultBackendURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			HealthInterval: DefaultHealthInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources for the given command-line arguments (without the program name):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a merged *StructuredConfig with defaults applied, or an error if any
// source fails to load.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
