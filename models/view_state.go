// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ViewState identifies the screen currently rendered by the session view.
//
// The zero value is ViewHome. Transitions are one-way: ViewHome may move to
// ViewClient or ViewMasseuse, and neither of those has an exit.
type ViewState int

const (
	// ViewHome is the start screen with the client and masseuse entry forms.
	ViewHome ViewState = iota

	// ViewClient is shown after the backend issued a session for the client.
	ViewClient

	// ViewMasseuse is shown after a masseuse entered a session identifier.
	ViewMasseuse
)

// String returns the lower-case name of the view.
func (v ViewState) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewClient:
		return "client"
	case ViewMasseuse:
		return "masseuse"
	default:
		return "unknown"
	}
}

// CanTransitionTo reports whether moving from v to next is allowed.
func (v ViewState) CanTransitionTo(next ViewState) bool {
	switch v {
	case ViewHome:
		return next == ViewClient || next == ViewMasseuse
	case ViewClient, ViewMasseuse:
		return false
	default:
		return false
	}
}
