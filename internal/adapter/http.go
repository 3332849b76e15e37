// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-massage-link/internal/config"
	"github.com/MKhiriev/go-massage-link/internal/logger"
	"github.com/MKhiriev/go-massage-link/internal/utils"
	"github.com/MKhiriev/go-massage-link/models"
	"github.com/go-resty/resty/v2"
)

const (
	sessionsPath = "/api/sessions"
	healthPath   = "/health"
)

type httpSessionBackend struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPSessionBackend constructs the HTTP/REST implementation of
// [SessionBackend]. It normalises and validates adapterCfg.BackendURL and
// configures the underlying resty client with the resolved base URL, the
// request timeout, and per-request trace ids.
//
// Returns an error if adapterCfg.BackendURL is empty or cannot be parsed.
func NewHTTPSessionBackend(adapterCfg config.ClientAdapter, log *logger.Logger) (SessionBackend, error) {
	baseURL, err := config.NormalizeBaseURL(adapterCfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter backend url: %w", err)
	}

	client := utils.NewJSONClient(baseURL, adapterCfg.RequestTimeout, utils.NewUUIDGenerator())

	adapterLog := log.GetChildLogger()
	adapterLog.Logger = adapterLog.With().Str("component", "adapter").Str("backend", baseURL).Logger()

	return &httpSessionBackend{client: client, baseURL: baseURL, logger: adapterLog}, nil
}

// BaseURL implements [SessionBackend].
func (h *httpSessionBackend) BaseURL() string {
	return h.baseURL
}

// CreateSession implements [SessionBackend]. It POSTs req to /api/sessions
// and decodes the session from the response body.
func (h *httpSessionBackend) CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(sessionsPath)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: create session: %v", ErrRequestFailed, err)
	}
	h.logResponse(resp, "create session")

	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = decodeBody(resp, &session); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// GetSession implements [SessionBackend]. It GETs /api/sessions/{id}; the id
// is path-escaped because it comes from user input on the masseuse side.
func (h *httpSessionBackend) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(sessionsPath + "/" + url.PathEscape(sessionID))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: get session: %v", ErrRequestFailed, err)
	}
	h.logResponse(resp, "get session")

	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = decodeBody(resp, &session); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// Health implements [SessionBackend]. It GETs /health.
func (h *httpSessionBackend) Health(ctx context.Context) (models.HealthStatus, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("%w: health: %v", ErrRequestFailed, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	var status models.HealthStatus
	if err = decodeBody(resp, &status); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

func (h *httpSessionBackend) logResponse(resp *resty.Response, op string) {
	h.logger.Debug().
		Str("op", op).
		Str("trace_id", resp.Request.Header.Get(utils.TraceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("backend response")
}

// decodeBody is strict about the body being JSON; resty's automatic result
// decoding silently leaves the target zero on non-JSON content types.
func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
