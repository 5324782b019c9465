package config

import (
	"os"
	"strconv"

	"mixedpower/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Solver SolverConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// SolverConfig holds inverse-solver limits
type SolverConfig struct {
	MaxIterations int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Solver: SolverConfig{
			MaxIterations: getEnvIntOrDefault("SOLVER_MAX_ITERATIONS", 200),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(c *Config) error {
	if c.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric: " + c.Server.Port)
	}
	if c.Solver.MaxIterations <= 0 {
		return errors.ConfigInvalid("SOLVER_MAX_ITERATIONS must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
