package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogFile is the JSON log file path; empty selects the default location.
	LogFile string
	// Version overrides the linker-injected build version when non-empty.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BackendURL is the normalised base URL of the session backend.
	BackendURL string
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// HealthInterval defines how often the backend health probe runs.
	HealthInterval time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration for the given
// command-line arguments (typically os.Args[1:]).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BackendURL:     cfg.Adapter.BackendURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
	}

	return clientCfg, clientCfg.validate()
}
