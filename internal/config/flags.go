package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client's command-line flags from args (without the
// program name).
//
// Flags:
//
//	-b backend base URL (e.g. http://localhost:8001)
//	-request-timeout outbound request timeout (e.g. "10s")
//	-health-interval backend health probe period (e.g. "15s")
//	-log-file path of the JSON log file
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var backendURL string
	var requestTimeout time.Duration
	var healthInterval time.Duration
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("massage-link", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&backendURL, "b", "", "Backend base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Backend health probe interval (e.g., 15s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile: logFile,
		},
		Adapter: Adapter{
			BackendURL:     backendURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			HealthInterval: healthInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
