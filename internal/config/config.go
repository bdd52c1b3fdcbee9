package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/reoring/infakt"
	"github.com/reoring/infakt/internal/logger"
)

// Config is the CLI configuration read from the environment.
type Config struct {
	// inFakt API
	APIKey  string
	Sandbox bool

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads the configuration from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() (*Config, error) {
	sandbox, err := parseBool(getEnv("INFAKT_SANDBOX", "false"))
	if err != nil {
		return nil, fmt.Errorf("INFAKT_SANDBOX: %w", err)
	}
	config := &Config{
		APIKey:        getEnv("INFAKT_API_KEY", ""),
		Sandbox:       sandbox,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	return nil
}

// RequireAPIKey reports a missing INFAKT_API_KEY. Only commands that call
// the API need it.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return fmt.Errorf("INFAKT_API_KEY is required")
	}
	return nil
}

// ClientConfig returns the library configuration for this environment.
func (c *Config) ClientConfig() infakt.Config {
	return infakt.Config{APIKey: c.APIKey, Sandbox: c.Sandbox}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
