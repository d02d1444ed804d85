package utils

import "github.com/google/uuid"

// RequestIDHeader carries the identifier generated by NewRequestID.
const RequestIDHeader = "X-Request-Id"

// NewRequestID returns a time-ordered identifier used to correlate an
// outbound request with server-side logs. It falls back to a random UUID if
// a V7 value cannot be produced.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
