package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		LogFile string `json:"log_file"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		BackendURL     string   `json:"backend_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogFile: jsonCfg.App.LogFile,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			BackendURL:     jsonCfg.Adapter.BackendURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
