package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"budgetapi/internal/logger"
)

// ErrorMode selects how failures are turned into HTTP status codes.
type ErrorMode string

const (
	// ErrorModeUniform answers every failure except a routing miss with 500
	// and the raw error message.
	ErrorModeUniform ErrorMode = "uniform"
	// ErrorModeTyped maps each error class to its own status code.
	ErrorModeTyped ErrorMode = "typed"
)

// Config holds application configuration
type Config struct {
	// Env is "production", "development" or "test".
	Env string

	// Server
	Port    string
	GinMode string

	// ErrorMode controls status mapping for failed requests.
	ErrorMode ErrorMode
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	config := &Config{
		Env:     getEnv("ENV", "development"),
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}

	mode, err := ParseErrorMode(getEnv("ERROR_MODE", string(ErrorModeUniform)))
	if err != nil {
		return nil, err
	}
	config.ErrorMode = mode

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			logger.Get().Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// ParseErrorMode validates an ERROR_MODE value.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch mode := ErrorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ErrorModeUniform, ErrorModeTyped:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ERROR_MODE %q (use %s or %s)", s, ErrorModeUniform, ErrorModeTyped)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
