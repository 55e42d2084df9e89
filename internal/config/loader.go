package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional YAML file, an
// optional .env file, and environment variables.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if STOCKROOM_CONFIG is set
//  3. env (prefix STOCKROOM_), with .env loaded into the environment first
func Load(_ context.Context) (*Config, error) {
	// A .env file is a developer convenience; absence is not an error and
	// values already present in the environment win.
	_ = godotenv.Load()

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("STOCKROOM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: STOCKROOM_ADDR, STOCKROOM_SUPABASE_URL, ...
	// Map env keys like STOCKROOM_SUPABASE_URL -> supabase_url (flat keys).
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("STOCKROOM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "stockroom_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// The store endpoint and key have no sane defaults; refusing to start
	// beats serving requests that can only fail downstream.
	if strings.TrimSpace(cfg.SupabaseURL) == "" {
		return nil, fmt.Errorf("%w: supabase_url must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.SupabaseKey) == "" {
		return nil, fmt.Errorf("%w: supabase_key must not be empty", ErrInvalidConfig)
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.Table == "" {
		return nil, fmt.Errorf("%w: table must not be empty", ErrInvalidConfig)
	}
	if cfg.StoreTimeoutMS <= 0 {
		return nil, fmt.Errorf("%w: store_timeout_ms must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
