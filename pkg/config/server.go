package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds process-level settings for the API server.
// Values come from defaults, then an optional YAML file named by
// CONFIG_FILE, then environment variable overrides, in that order.
type ServerConfig struct {
	// Port is the TCP port the RPC server listens on.
	Port int `yaml:"port"`
	// ClientOrigin is the single allowed CORS origin for the client view.
	ClientOrigin string `yaml:"client_origin"`
	// RateLimit configures the per-IP request limiter.
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig configures the per-IP token bucket limiter.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`   // Sustained requests per second per client IP
	Burst   int     `yaml:"burst"` // Burst allowance per client IP
}

// DefaultServerConfig returns the built-in defaults. The port default
// matches the original deployment of this service.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         2022,
		ClientOrigin: "http://localhost:3000",
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     50,
			Burst:   100,
		},
	}
}

// LoadServerConfig resolves the server configuration.
//
// Precedence (lowest to highest): defaults, YAML file from CONFIG_FILE,
// SERVER_PORT / CLIENT_URL / RATE_LIMIT_* environment variables.
// A CONFIG_FILE that is set but unreadable or malformed is an error;
// an unset CONFIG_FILE is not.
func LoadServerConfig() (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = GetEnvInt("SERVER_PORT", cfg.Port)
	cfg.ClientOrigin = GetEnvString("CLIENT_URL", cfg.ClientOrigin)
	cfg.RateLimit.Enabled = GetEnvBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.RPS = float64(GetEnvInt("RATE_LIMIT_RPS", int(cfg.RateLimit.RPS)))
	cfg.RateLimit.Burst = GetEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port: %d", cfg.Port)
	}

	return cfg, nil
}
