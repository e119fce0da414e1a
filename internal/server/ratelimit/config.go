package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// key identifies the bucket family a request falls into. Configured
// endpoints share one bucket across all matching paths.
func (c *EndpointConfig) key(path, method string) string {
	if c.Path != "" {
		return c.Method + " " + c.Path
	}
	return method + " " + path
}

// LoadConfig reads rate limiting settings from RATE_LIMIT_* environment
// variables. Unset or unparsable values keep their defaults.
func LoadConfig() *Config {
	if !env("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   env("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: env("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits for the job API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Reload re-reads every source file or the database.
		{Path: "/api/reload", Method: "POST", Limit: 6, Window: time.Minute, Burst: 2},

		// Similarity scans the whole catalog per request.
		{Path: "/api/similar-jobs/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},

		// Aggregates are cached per catalog but still serialize large maps.
		{Path: "/api/company-analysis", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func env[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

// parseIPList turns "1.2.3.4, 5.6.7.8" into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
