// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants: the detail
// strings the session backend puts into error bodies and the user-facing
// messages the client shows for them.
//
// Keeping them in one place ensures the adapter, the services and the TUI
// agree on wording.
package app

// Backend detail strings, as returned in {"detail": ...} error bodies.
const (
	// MsgSessionNotFound is returned by GET /api/sessions/{id} for an
	// unknown identifier.
	MsgSessionNotFound = "Session not found"
)

// User-facing messages.
const (
	// MsgSessionCreationFailed is shown when a session could not be created.
	MsgSessionCreationFailed = "Could not create a session, please try again"

	// MsgBackendUnavailable is shown for network-level failures.
	MsgBackendUnavailable = "No network connection or the server is unavailable"

	// MsgInvalidBackendResponse is shown when the backend answered with a
	// body the client cannot use.
	MsgInvalidBackendResponse = "The server returned an unexpected response"

	// MsgSessionLookupFailed is shown when session details could not be
	// loaded.
	MsgSessionLookupFailed = "Could not load session details"
)
