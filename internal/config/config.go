// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the server reads from the environment.
type Config struct {
	// Port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// RedisURL selects the weather cache backend. Empty means the
	// in-process store, which is fine for a single instance.
	RedisURL string `envconfig:"REDIS_URL"`

	// AdminToken guards the mutating routes (weather refresh).
	AdminToken string `envconfig:"ADMIN_TOKEN" required:"true"`

	// WeatherTTL is how long a simulated reading stays fresh.
	WeatherTTL time.Duration `envconfig:"WEATHER_TTL" default:"30m"`

	// RateLimitRPM caps requests per minute per client IP.
	RateLimitRPM int `envconfig:"RATE_LIMIT_RPM" default:"60"`
}

// Load reads the configuration. A missing .env file is not an error; real
// deployments set the environment directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.RateLimitRPM <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPM must be positive, got %d", cfg.RateLimitRPM)
	}

	return &cfg, nil
}
