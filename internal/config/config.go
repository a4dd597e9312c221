// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Load layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's error kinds.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ScoreboardBaseURL overrides the scoreboard provider base URL.
	// Empty means the client default.
	ScoreboardBaseURL string `koanf:"scoreboard_base_url"`

	// FetchTimeoutMS bounds the upstream scoreboard fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// RedisAddr enables the snapshot cache when non-empty, e.g.
	// "localhost:6379".
	RedisAddr string `koanf:"redis_addr"`

	// CacheTTLMS sets the snapshot cache expiry.
	CacheTTLMS int `koanf:"cache_ttl_ms"`

	// WorkerCount sets the per-computation scoring fan-out width.
	WorkerCount int `koanf:"worker_count"`

	// MaxEntrants caps the roster size of one request. Zero disables the
	// cap.
	MaxEntrants int `koanf:"max_entrants"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		FetchTimeoutMS: 10_000,
		CacheTTLMS:     10_000,
		WorkerCount:    runtime.NumCPU(),
		MaxEntrants:    500,
	}
}
