package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
	"github.com/davidbz/llmcost/internal/provider/azureml"
)

// Config represents the settings shared by every command.
type Config struct {
	Log   observability.LogConfig
	Azure azureml.Config
}

// EndpointConfig contains the target endpoint and its credential.
// Only request commands need it, so it is parsed separately from Config.
type EndpointConfig struct {
	URL         string `env:"API_URL,notEmpty"`
	BearerToken string `env:"ENDPOINT_TOKEN,notEmpty"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*observability.LogConfig
	*azureml.Config
}

// loadEnvFiles loads environment files, ignoring missing ones.
func loadEnvFiles() {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}
}

// Load loads environment files and parses configuration.
func Load() (*Config, error) {
	loadEnvFiles()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	return &cfg, nil
}

// LoadEndpoint parses the endpoint URL and bearer token.
// Both must be set and non-empty.
func LoadEndpoint() (*EndpointConfig, error) {
	loadEnvFiles()

	var cfg EndpointConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Log,
		&cfg.Azure,
	}
}
