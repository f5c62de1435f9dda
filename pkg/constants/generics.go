package constants

import "time"

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Default rate limiting configuration. The apply form is a low-volume,
// high-abuse surface, so the defaults are deliberately tight.
const (
	// DefaultRateLimitRequests is the default number of requests allowed per time window
	DefaultRateLimitRequests = 30
	// DefaultRateLimitWindowSeconds is the default time window for rate limiting
	DefaultRateLimitWindowSeconds = 300
)

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowSeconds) * time.Second
}

// Listing pagination defaults and bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
