package github

import (
	"strings"
	"time"

	"github.com/custodia-labs/ghmine/internal/core/ports/driven"
)

// Configuration keys read from the config store.
const (
	KeyBaseURL           = "github.base_url"
	KeyRequestsPerSecond = "github.requests_per_second"
	KeyTimeoutSeconds    = "github.timeout_seconds"
)

// Config holds the connector settings.
type Config struct {
	// BaseURL overrides the REST API root (GitHub Enterprise, tests).
	// Empty uses https://api.github.com/.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RequestsPerSecond is the proactive throttle. <= 0 disables it.
	RequestsPerSecond float64
}

// DefaultConfig returns settings suited to the authenticated search quota.
func DefaultConfig() Config {
	return Config{
		Timeout:           DefaultTimeout,
		RequestsPerSecond: ProactiveRate,
	}
}

// ParseConfig reads connector settings from store, keeping defaults for unset keys.
// A nil store yields DefaultConfig.
func ParseConfig(store driven.ConfigStore) Config {
	cfg := DefaultConfig()
	if store == nil {
		return cfg
	}

	if base := strings.TrimSpace(store.GetString(KeyBaseURL)); base != "" {
		cfg.BaseURL = base
	}

	if secs := store.GetInt(KeyTimeoutSeconds); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	// TOML floats decode as float64, integers as int64
	if v, ok := store.Get(KeyRequestsPerSecond); ok {
		switch n := v.(type) {
		case float64:
			cfg.RequestsPerSecond = n
		case int64:
			cfg.RequestsPerSecond = float64(n)
		case int:
			cfg.RequestsPerSecond = float64(n)
		}
	}

	return cfg
}
