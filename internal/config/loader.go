package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PICKEM_CONFIG is set
//  3. env (prefix PICKEM_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PICKEM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: PICKEM_ADDR, PICKEM_WORKER_COUNT, ...
	// Keys map to the koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("PICKEM_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "pickem_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.FetchTimeoutMS <= 0:
		return nil, fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case cfg.WorkerCount <= 0:
		return nil, fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case cfg.MaxEntrants < 0:
		return nil, fmt.Errorf("%w: max_entrants must not be negative", ErrInvalidConfig)
	}
	return &cfg, nil
}
