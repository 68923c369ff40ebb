// Package config loads runtime configuration from the environment.
// A .env file, when present, is loaded by the commands via godotenv
// before Load is called.
package config

import (
	"errors"
	"os"
)

// Config holds every environment-provided setting the backend consumes.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string. Required: the
	// process must refuse to start without it.
	DatabaseURL string

	// Port the HTTP server listens on. Defaults to 8080.
	Port string

	// Env is "development" or "production". Production hides storage
	// error detail from clients.
	Env string

	// FrontendURL is the CORS allow-origin for the marketing site.
	FrontendURL string

	// SendGridAPIKey authenticates against the SendGrid v3 API. Empty
	// means notifications are disabled, not a startup error.
	SendGridAPIKey string

	// AdminEmail receives the submission alert.
	AdminEmail string

	// FromEmail is the verified sender address.
	FromEmail string

	// SendConfirmation controls whether the submitter gets a
	// confirmation copy.
	SendConfirmation bool

	// LegalDocsDir is the directory holding legal Markdown documents.
	LegalDocsDir string
}

// ErrMissingDatabaseURL is returned by Load when DATABASE_URL is unset.
// It is fatal: serving without storage would fail every request.
var ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required")

// Load reads configuration from the environment and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Port:             envOr("PORT", "8080"),
		Env:              envOr("APP_ENV", "development"),
		FrontendURL:      envOr("FRONTEND_URL", "http://localhost:3000"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		FromEmail:        os.Getenv("FROM_EMAIL"),
		SendConfirmation: os.Getenv("SEND_CONFIRMATION") == "true",
		LegalDocsDir:     envOr("LEGAL_DOCS_DIR", "./legal"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	return cfg, nil
}

// IsProduction reports whether the process runs with production error
// reporting (generic client messages, full detail only in logs).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
