package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-massage-link/internal/app"
	"github.com/MKhiriev/go-massage-link/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeServerUnavailableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"refused", errors.New("dial tcp 127.0.0.1:8001: connect: connection refused"), app.MsgBackendUnavailable},
		{"dns", errors.New("lookup backend: no such host"), app.MsgBackendUnavailable},
		{"timeout", errors.New("context deadline exceeded (Client.Timeout exceeded)"), app.MsgBackendUnavailable},
		{"other", errors.New("http 418"), "http 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeServerUnavailableError(tt.err))
		})
	}
}

func TestHumanizeSessionError(t *testing.T) {
	assert.Empty(t, humanizeSessionError(nil))
	assert.Equal(t, app.MsgBackendUnavailable,
		humanizeSessionError(fmt.Errorf("%w: %w", service.ErrSessionCreationFailure, service.ErrBackendUnavailable)))
	assert.Equal(t, app.MsgInvalidBackendResponse,
		humanizeSessionError(fmt.Errorf("%w: %w", service.ErrSessionCreationFailure, service.ErrMissingSessionID)))
	assert.Equal(t, app.MsgSessionNotFound, humanizeSessionError(service.ErrSessionNotFound))
}

func TestSessionErrorMessages(t *testing.T) {
	err := service.ErrBackendUnavailable

	assert.Equal(t, app.MsgSessionCreationFailed+"\n"+app.MsgBackendUnavailable, createSessionErrorMessage(err))
	assert.Equal(t, app.MsgSessionLookupFailed+"\n"+app.MsgBackendUnavailable, lookupSessionErrorMessage(err))
}
