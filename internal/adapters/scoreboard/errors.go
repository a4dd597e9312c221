package scoreboard

import "errors"

// Sentinel kinds for scoreboard errors.
var (
	// ErrUpstreamUnavailable covers transport failures, timeouts, non-2xx
	// statuses, undecodable payloads, and an open circuit breaker. Callers
	// may retry on their own cadence; the client never retries internally.
	ErrUpstreamUnavailable = errors.New("scoreboard upstream unavailable")
)
