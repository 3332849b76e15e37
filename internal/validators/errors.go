package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyClientName = errors.New("client name is required")
	ErrEmptySessionID  = errors.New("session id is required")
)
