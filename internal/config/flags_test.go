package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-b", "http://backend:8001",
				"-request-timeout", "30s",
				"-health-interval", "1m",
				"-log-file", "/tmp/client.log",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://backend:8001", cfg.Adapter.BackendURL)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, time.Minute, cfg.Workers.HealthInterval)
				assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid tests ParseFlags with malformed input
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-unknown", "x"}},
		{name: "bad duration", args: []string{"-request-timeout", "soon"}},
		{name: "missing value", args: []string{"-b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
