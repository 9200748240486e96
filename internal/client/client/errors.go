package client

import "errors"

var (
	// ErrUnavailable means no response was received: network failure or timeout.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the server answered but rejected the request,
	// or returned a body the client could not interpret.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRejected marks a request the backend refused with an explanation;
	// the backend message is attached by the wrapping error.
	ErrRejected = errors.New("request rejected")
)
