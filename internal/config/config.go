package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds everything the server reads from the environment.
// A .env file is loaded by the entrypoint before parsing, so local
// development and deployed environments go through the same path.
type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	GinMode         string `env:"GIN_MODE"`
	DatabaseURL     string `env:"DATABASE_URL"`
	JWTSecret       string `env:"JWT_SECRET"`
	JWTExpiresHours int    `env:"JWT_EXPIRES_HOURS" envDefault:"24"`
	YouTubeAPIKey   string `env:"YOUTUBE_API_KEY"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
