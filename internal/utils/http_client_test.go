package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Type(t *testing.T) {
	client := NewHTTPClient()

	// Ensure the embedded client is actually a *resty.Client
	if _, ok := interface{}(client.Client).(*resty.Client); !ok {
		t.Fatalf("expected embedded client to be *resty.Client, got %T", client.Client)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestHTTPClient_EmbeddedClientUsable(t *testing.T) {
	client := NewHTTPClient()

	// Just check that we can call a basic method on the embedded resty client
	req := client.R()
	if req == nil {
		t.Fatal("expected non-nil request from embedded resty client")
	}
}

func TestNewJSONClient_Configured(t *testing.T) {
	client := NewJSONClient("http://localhost:8001", 3*time.Second, NewUUIDGenerator())

	if got := client.BaseURL; got != "http://localhost:8001" {
		t.Fatalf("expected base URL to be set, got %q", got)
	}
	if got := client.GetClient().Timeout; got != 3*time.Second {
		t.Fatalf("expected timeout 3s, got %v", got)
	}
}

func TestNewJSONClient_SetsTraceID(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get(TraceIDHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewJSONClient(srv.URL, time.Second, NewUUIDGenerator())

	_, err := client.R().Get("/health")
	require.NoError(t, err)
	_, err = client.R().SetHeader(TraceIDHeader, "fixed-trace").Get("/health")
	require.NoError(t, err)

	require.Len(t, got, 2)
	_, parseErr := uuid.Parse(got[0])
	assert.NoError(t, parseErr, "generated trace id must be a UUID")
	assert.Equal(t, "fixed-trace", got[1])
}
