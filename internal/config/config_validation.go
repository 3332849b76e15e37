// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the client configuration and normalises the backend URL in
// place: surrounding whitespace and trailing slashes are removed and a missing
// scheme defaults to http.
func (cfg *ClientConfig) validate() error {
	backendURL, err := NormalizeBaseURL(cfg.Adapter.BackendURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	cfg.Adapter.BackendURL = backendURL

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.HealthInterval <= 0 {
		return fmt.Errorf("%w: health interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

// NormalizeBaseURL trims raw, defaults the scheme to http, and strips trailing
// slashes. It fails when the result has no host or an unsupported scheme.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
