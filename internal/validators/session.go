// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-massage-link/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldClientName targets the display name of the client.
	FieldClientName = "client_name"

	// FieldSessionID targets the opaque session identifier.
	FieldSessionID = "id"
)

// SessionValidator checks session requests before they are sent and session
// responses before the UI relies on them. A value counts as present when it
// is non-empty after trimming whitespace; the value itself is never altered.
type SessionValidator struct{}

func NewSessionValidator() Validator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateSessionRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.Session:
		return v.validateSession(ctx, value, fields...)
	case *models.Session:
		return v.validateSession(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateCreateRequest(_ context.Context, req models.CreateSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientName}
	}

	for _, f := range fields {
		switch f {
		case FieldClientName:
			if isBlank(req.ClientName) {
				return ErrEmptyClientName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateSession only requires the id by default; every other field is
// informational.
func (v *SessionValidator) validateSession(_ context.Context, session models.Session, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if isBlank(session.ID) {
				return ErrEmptySessionID
			}
		case FieldClientName:
			if isBlank(session.ClientName) {
				return ErrEmptyClientName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
