// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-massage-link/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionValidator(t *testing.T) {
	v := NewSessionValidator()
	require.NotNil(t, v)
	assert.IsType(t, &SessionValidator{}, v)
}

func TestSessionValidator_UnsupportedType(t *testing.T) {
	v := NewSessionValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "abc"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}

func TestSessionValidator_CreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{"valid", models.CreateSessionRequest{ClientName: "Anna"}, nil, nil},
		{"valid pointer", &models.CreateSessionRequest{ClientName: " Anna "}, nil, nil},
		{"empty", models.CreateSessionRequest{}, nil, ErrEmptyClientName},
		{"whitespace", models.CreateSessionRequest{ClientName: " \t\n"}, nil, ErrEmptyClientName},
		{"explicit field", models.CreateSessionRequest{}, []string{FieldClientName}, ErrEmptyClientName},
		{"unknown field", models.CreateSessionRequest{ClientName: "Anna"}, []string{"pressure"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSessionValidator().Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionValidator_Session(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{"id only", models.Session{ID: "abc123"}, nil, nil},
		{"padded id", &models.Session{ID: " xyz "}, nil, nil},
		{"missing id", models.Session{ClientName: "Anna"}, nil, ErrEmptySessionID},
		{"blank id", models.Session{ID: "   "}, []string{FieldSessionID}, ErrEmptySessionID},
		{"client name", models.Session{ID: "abc123"}, []string{FieldSessionID, FieldClientName}, ErrEmptyClientName},
		{"unknown field", models.Session{ID: "abc123"}, []string{"depth"}, ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSessionValidator().Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
