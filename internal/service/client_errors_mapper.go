// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-massage-link/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain for errors.Is and logging.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrRequestFailed),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	case errors.Is(err, adapter.ErrInvalidResponse):
		return fmt.Errorf("%w: %w", ErrInvalidBackendResponse, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrBackendRejected, err)
	}
}
