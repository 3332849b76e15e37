// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the session
// backend.
//
// The primary abstraction is [SessionBackend], which decouples the service
// layer from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-massage-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_backend_mock.go -package=mock

// SessionBackend defines communication with the external session backend.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type SessionBackend interface {
	// CreateSession asks the backend to create a session owned by
	// req.ClientName and returns the decoded session. Returns an error if the
	// request fails, the backend responds with a non-2xx status, or the body
	// is not valid session JSON.
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.Session, error)

	// GetSession fetches the session identified by sessionID. Returns
	// [ErrNotFound] (wrapped) when the backend does not know it.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)

	// Health queries the backend health endpoint.
	Health(ctx context.Context) (models.HealthStatus, error)

	// BaseURL returns the backend base URL the adapter talks to.
	BaseURL() string
}
