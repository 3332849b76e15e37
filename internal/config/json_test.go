package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "log_file": "/tmp/client.log", "version": "2.0.0" },
		"adapter": { "backend_url": "http://backend:8001", "request_timeout": "3s" },
		"workers": { "health_interval": "45s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "http://backend:8001", cfg.Adapter.BackendURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.HealthInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter": {"request_timeout": 2000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"health_interval": "often"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}

func TestDuration_UnmarshalJSON_WrongType(t *testing.T) {
	var d Duration
	err := json.Unmarshal([]byte(`true`), &d)
	assert.Error(t, err)
}
