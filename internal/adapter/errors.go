package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrRequestFailed wraps failures that happen before any response is
	// received: connection errors, timeouts, cancelled contexts.
	ErrRequestFailed = errors.New("request failed")

	// ErrInvalidResponse is returned when a 2xx body cannot be decoded.
	ErrInvalidResponse = errors.New("invalid response body")
)
