// Package config loads application configuration from environment
// variables into a tagged struct.  A .env file, when present, is read
// by the entry point before parsing.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration values.  Redis and RabbitMQ
// are optional: when their addresses are unset or unreachable the
// server runs with caching, rate limiting and eventing disabled.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"dev"`
	Port string `env:"APP_PORT" envDefault:"8080"`

	// AllowedUsers is the stub identity allow-list.  An empty list
	// accepts any X-User-ID; the empty id always maps to "guest".
	AllowedUsers []string `env:"ALLOWED_USERS" envSeparator:","`

	// Demo seeding of users and the two sample bookings.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"true"`

	// Redis-backed middleware on the public catalog routes.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	RateLimit     int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"120"`

	// Booking event publishing.  Leave AMQPURL empty to disable.
	AMQPURL string `env:"RABBITMQ_URL"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
