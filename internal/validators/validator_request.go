package validators

import (
	"context"

	"github.com/MKhiriev/go-algo-wallet/models"
)

const (
	FieldRequestID = "request_id"
)

// maxRequestIDLength bounds the inbound request id. The id is persisted as
// the pending-event key and echoed in every response, so an unbounded id
// would let a client grow the store arbitrarily.
const maxRequestIDLength = 200

// RequestValidator checks the transport-level shape of inbound provider
// requests. Everything beyond the request id — method validity, params,
// authorization — is answered with a protocol error response by the
// provider service, because a request with a usable id must always get a
// response rather than an HTTP error.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RequestMessage:
		return v.validateRequestMessage(ctx, value, fields...)
	case *models.RequestMessage:
		return v.validateRequestMessage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRequestMessage(_ context.Context, request models.RequestMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequestID}
	}

	for _, f := range fields {
		switch f {
		case FieldRequestID:
			if request.ID == "" {
				return ErrEmptyRequestID
			}
			if len(request.ID) > maxRequestIDLength {
				return ErrRequestIDTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
