package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	// ErrEmptyMessage rejects blank input before any upstream call.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrUpstreamUnavailable tags any search or generation failure
	// (credentials, network, HTTP status, rate limit). The usecase catches
	// it at the boundary and replies with an apology turn instead of
	// propagating it.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
