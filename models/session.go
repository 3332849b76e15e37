// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is a backend-issued pairing context shared out-of-band between a
// client and a masseuse. The backend owns its lifetime; the client keeps a
// transient copy only.
type Session struct {
	// ID is the opaque, server-assigned session identifier.
	ID string `json:"id"`

	// ClientName is the display name the client entered when the session was
	// created.
	ClientName string `json:"client_name"`

	// Pressure, Speed and Depth are the client's current massage preferences.
	// The backend initialises each of them to "medium".
	Pressure string `json:"pressure,omitempty"`
	Speed    string `json:"speed,omitempty"`
	Depth    string `json:"depth,omitempty"`

	// FocusZones lists body zones the masseuse should concentrate on.
	FocusZones []string `json:"focus_zones,omitempty"`

	// IgnoreZones lists body zones the masseuse should avoid.
	IgnoreZones []string `json:"ignore_zones,omitempty"`

	// CreatedAt and UpdatedAt are kept as the backend formats them; the
	// backend emits naive ISO-8601 timestamps that time.Time cannot decode.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// HasPreferences reports whether the backend returned any preference data
// worth rendering.
func (s Session) HasPreferences() bool {
	return s.Pressure != "" || s.Speed != "" || s.Depth != "" ||
		len(s.FocusZones) > 0 || len(s.IgnoreZones) > 0
}

// CreateSessionRequest is the body of POST /api/sessions.
type CreateSessionRequest struct {
	// ClientName is sent exactly as entered by the user.
	ClientName string `json:"client_name"`
}
