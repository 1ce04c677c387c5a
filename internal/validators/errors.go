package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRequestID   = errors.New("request id is required")
	ErrRequestIDTooLong = errors.New("request id is too long")
)
