package service

import (
	"errors"

	"github.com/MKhiriev/go-massage-link/internal/validators"
)

var (
	// ErrSessionCreationFailure is the single failure kind of session
	// creation: the request failed, the backend rejected it, or the response
	// could not be used.
	ErrSessionCreationFailure = errors.New("session creation failure")

	ErrEmptyClientName = validators.ErrEmptyClientName
	ErrEmptySessionID  = validators.ErrEmptySessionID

	// ErrMissingSessionID means the backend answered 2xx without an id.
	ErrMissingSessionID = errors.New("backend response has no session id")

	ErrSessionNotFound        = errors.New("session not found")
	ErrBackendUnavailable     = errors.New("backend unavailable")
	ErrInvalidBackendResponse = errors.New("invalid backend response")
	ErrBackendRejected        = errors.New("backend rejected the request")
)
