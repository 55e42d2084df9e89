// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers sources on top.
// - External errors must be wrapped via this package's sentinel kinds.
package config

// Default values for optional settings.
const (
	defaultAddr           = ":8080"
	defaultTable          = "items"
	defaultStoreTimeoutMS = 10_000
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SupabaseURL is the base URL of the hosted record store project,
	// e.g. "https://xyzcompany.supabase.co". Required.
	SupabaseURL string `koanf:"supabase_url"`

	// SupabaseKey is the API key sent with every store request. Required.
	// Access control itself is enforced by the store's row-level security.
	SupabaseKey string `koanf:"supabase_key"`

	// Table names the store table holding items.
	Table string `koanf:"table"`

	// StoreTimeoutMS bounds a single store round trip.
	StoreTimeoutMS int `koanf:"store_timeout_ms"`
}

// New creates a Config populated with defaults. The required store settings
// are intentionally left empty; Load validates their presence.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           defaultAddr,
		Table:          defaultTable,
		StoreTimeoutMS: defaultStoreTimeoutMS,
	}
}
