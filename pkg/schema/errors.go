package schema

import "errors"

var (
	// ErrFieldCollision is returned when composed schemas declare the same
	// field name for the same request section.
	ErrFieldCollision = errors.New("schema: field declared twice")

	// ErrMalformedBody is returned when the request body is not valid JSON.
	ErrMalformedBody = errors.New("schema: malformed request body")

	// ErrNotValidated is returned when a handler asks for validated data on
	// a request that did not pass through the validation middleware.
	ErrNotValidated = errors.New("schema: request not validated")
)
