package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `env:"GO_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`

	// DatabaseURL selects the backend: a postgres:// URL uses Postgres,
	// anything else is treated as a SQLite path.
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:campus.db"`

	// ContextTimeout bounds every service-level operation.
	ContextTimeout time.Duration `env:"CONTEXT_TIMEOUT" envDefault:"5s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Email EmailConfig
}

// EmailConfig selects and configures the outgoing mail provider.
// Provider "ses" sends through AWS SES, "log" prints messages locally,
// and "noop" disables confirmation mail entirely.
type EmailConfig struct {
	Provider    string `env:"EMAIL_PROVIDER" envDefault:"log"`
	FromAddress string `env:"EMAIL_FROM_ADDRESS" envDefault:"no-reply@campus.example.com"`
	FromName    string `env:"EMAIL_FROM_NAME" envDefault:"Campus Events"`

	SESRegion             string `env:"SES_REGION"`
	SESAccessKeyID        string `env:"SES_ACCESS_KEY_ID"`
	SESSecretAccessKey    string `env:"SES_SECRET_ACCESS_KEY"`
	SESInsecureSkipVerify bool   `env:"SES_INSECURE_SKIP_VERIFY"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if environment != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
