package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP  `envPrefix:"HTTP_"`
	Store    Store `envPrefix:"STORE_"`
	Auth     Auth  `envPrefix:"AUTH_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// Store contains snapshot persistence parameters.
type Store struct {
	Backend      string        `env:"BACKEND" envDefault:"json"`
	Path         string        `env:"PATH" envDefault:"data"`
	SaveInterval time.Duration `env:"SAVE_INTERVAL" envDefault:"5m"`
}

// Auth contains access gate parameters.
type Auth struct {
	Enabled    bool          `env:"ENABLED" envDefault:"true"`
	Username   string        `env:"USERNAME" envDefault:"admin"`
	Password   string        `env:"PASSWORD" envDefault:"admin"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
