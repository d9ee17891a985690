package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the studyhub service.
// Environment variables are parsed from the STUDYHUB_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Single-user demo deployment: the seeded user every request operates on.
	DemoUserID string `envconfig:"DEMO_USER_ID" default:"user-1"`

	// Completion service configuration
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-5"`
}

// New creates a Config by parsing environment variables.
// Example: STUDYHUB_HTTP_PORT, STUDYHUB_OPENAI_API_KEY.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("STUDYHUB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("demo_user", cfg.DemoUserID).
		Str("openai_base_url", cfg.OpenAIBaseURL).
		Str("openai_model", cfg.OpenAIModel).
		Bool("openai_key_present", cfg.OpenAIAPIKey != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:   EnvTesting,
		HTTPPort:      8080,
		DemoUserID:    "user-1",
		OpenAIBaseURL: "http://localhost:0",
		OpenAIModel:   "test-model",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
