// Package config loads service configuration from the environment,
// with an optional .env file and typed fallbacks for every setting.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultStartingScore        = 0.15
	DefaultDamping              = 0.85
	DefaultConvergenceThreshold = 0.001
	DefaultWindowSize           = 4
	DefaultMaxIterations        = 100
)

type Config struct {
	ServerPort        string
	CORSAllowedOrigin string

	StartingScore        float64
	Damping              float64
	ConvergenceThreshold float64
	WindowSize           int
	MaxIterations        int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:           getEnv("TEXTRANK_SERVER_PORT", "8080"),
		CORSAllowedOrigin:    getEnv("TEXTRANK_CORS_ALLOWED_ORIGIN", "*"),
		StartingScore:        getEnvFloat("TEXTRANK_STARTING_SCORE", DefaultStartingScore),
		Damping:              getEnvFloat("TEXTRANK_DAMPING", DefaultDamping),
		ConvergenceThreshold: getEnvFloat("TEXTRANK_CONVERGENCE_THRESHOLD", DefaultConvergenceThreshold),
		WindowSize:           getEnvInt("TEXTRANK_WINDOW_SIZE", DefaultWindowSize),
		MaxIterations:        getEnvInt("TEXTRANK_MAX_ITERATIONS", DefaultMaxIterations),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Damping <= 0 || c.Damping >= 1 {
		return fmt.Errorf("TEXTRANK_DAMPING must be between 0 and 1, got %g", c.Damping)
	}
	if c.WindowSize < 2 {
		return fmt.Errorf("TEXTRANK_WINDOW_SIZE must be at least 2, got %d", c.WindowSize)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("TEXTRANK_MAX_ITERATIONS must be at least 1, got %d", c.MaxIterations)
	}
	if c.ConvergenceThreshold < 0 {
		return fmt.Errorf("TEXTRANK_CONVERGENCE_THRESHOLD must not be negative, got %g", c.ConvergenceThreshold)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
