// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business rules for session pairing:
// creating a session for a client, joining one as a masseuse, looking up
// session details, and probing backend health in the background.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-massage-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ClientSessionService defines the session operations available to the UI.
type ClientSessionService interface {
	// CreateSession asks the backend for a new session owned by clientName.
	// The name is sent exactly as entered; only its trimmed form must be
	// non-empty, otherwise [ErrEmptyClientName] is returned without any
	// request. Every backend failure, and a response without an id, is
	// reported as [ErrSessionCreationFailure] (wrapped).
	CreateSession(ctx context.Context, clientName string) (models.Session, error)

	// JoinSession validates a session id entered by a masseuse. It never
	// contacts the backend. Returns [ErrEmptySessionID] when the trimmed id
	// is empty; otherwise returns sessionID unchanged.
	JoinSession(sessionID string) (string, error)

	// GetSession loads session details for display. Returns
	// [ErrSessionNotFound] (wrapped) for unknown ids.
	GetSession(ctx context.Context, sessionID string) (models.Session, error)
}

// ClientHealthJob periodically probes the backend and reports whether it is
// reachable.
type ClientHealthJob interface {
	// Start stops any previous run, probes once immediately and then every
	// interval, passing the result to report. The job stops when ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration, report func(online bool))

	// Stop cancels the running job and waits for its goroutine to exit.
	// Safe to call when the job is not running.
	Stop()
}
