package tui

import "github.com/MKhiriev/go-massage-link/models"

type sessionCreatedMsg struct {
	session models.Session
	err     error
}

type sessionLoadedMsg struct {
	session models.Session
	err     error
}

// connectionMsg carries a health probe result pushed from outside the
// program through tea.Program.Send.
type connectionMsg struct {
	online bool
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
