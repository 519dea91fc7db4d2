package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Input
	DataFile string

	// App
	Env string

	// MCP server
	Transport   string
	Addr        string
	SSEEndpoint string

	// Metrics
	MetricsPrometheus bool
	MetricsAddr       string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		DataFile:          getEnv("SOCIALGRAPH_DATA", "data.db"),
		Env:               getEnv("SOCIALGRAPH_ENV", "development"),
		Transport:         getEnv("SOCIALGRAPH_TRANSPORT", "stdio"),
		Addr:              getEnv("SOCIALGRAPH_ADDR", ":8080"),
		SSEEndpoint:       getEnv("SOCIALGRAPH_SSE_ENDPOINT", "/sse"),
		MetricsPrometheus: getEnvBool("METRICS_PROMETHEUS", false),
		MetricsAddr:       getEnv("METRICS_ADDR", ":9090"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("SOCIALGRAPH_DATA is required")
	}
	switch c.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown transport %q (expected stdio or sse)", c.Transport)
	}
	if c.Transport == "sse" && c.Addr == "" {
		return fmt.Errorf("SOCIALGRAPH_ADDR is required for the sse transport")
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
