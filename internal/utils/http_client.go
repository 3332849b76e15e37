package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace identifier to the backend.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewJSONClient returns an HTTPClient bound to baseURL that sends and accepts
// JSON, gives up after timeout, and stamps every request with a fresh
// [TraceIDHeader] unless the caller already set one.
func NewJSONClient(baseURL string, timeout time.Duration, ids *UUIDGenerator) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(TraceIDHeader) == "" {
				req.SetHeader(TraceIDHeader, ids.Generate())
			}
			return nil
		})

	return client
}
