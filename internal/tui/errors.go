// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-massage-link/internal/app"
	"github.com/MKhiriev/go-massage-link/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgBackendUnavailable
	}

	return err.Error()
}

func humanizeSessionError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrBackendUnavailable):
		return app.MsgBackendUnavailable
	case errors.Is(err, service.ErrInvalidBackendResponse),
		errors.Is(err, service.ErrMissingSessionID):
		return app.MsgInvalidBackendResponse
	case errors.Is(err, service.ErrSessionNotFound):
		return app.MsgSessionNotFound
	default:
		return humanizeServerUnavailableError(err)
	}
}

func createSessionErrorMessage(err error) string {
	return app.MsgSessionCreationFailed + "\n" + humanizeSessionError(err)
}

func lookupSessionErrorMessage(err error) string {
	return app.MsgSessionLookupFailed + "\n" + humanizeSessionError(err)
}
