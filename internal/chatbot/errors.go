package chatbot

import "errors"

var (
	// ErrNotConfigured means no model credential is set; operator-actionable.
	ErrNotConfigured = errors.New("model API key not configured")

	// ErrModelInvocation wraps provider failures (network, quota, malformed response).
	ErrModelInvocation = errors.New("model invocation failed")
)
