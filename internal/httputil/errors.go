package httputil

import "errors"

// Errors for malformed requests. They are returned verbatim to the
// client, so they address the caller directly.
var (
	ErrInvalidBody      = errors.New("the request body could not be parsed, please check the data you sent")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
