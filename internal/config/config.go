package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	forge "github.com/nousresearch/forge-go"
)

var (
	ErrMissingAPIKey = errors.New("FORGE_API_KEY is required")
	ErrInvalidSpeed  = errors.New("invalid reasoning speed")
)

type Config struct {
	Forge ForgeConfig
	Log   LogConfig
}

type ForgeConfig struct {
	APIKey         string
	BaseURL        string
	ReasoningSpeed string
	Track          bool
	Timeout        time.Duration
	PollInterval   time.Duration
	MaxRetries     int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Forge: ForgeConfig{
			APIKey:         os.Getenv("FORGE_API_KEY"),
			BaseURL:        getEnvOrDefault("FORGE_BASE_URL", "https://forge-api.nousresearch.com/v1"),
			ReasoningSpeed: getEnvOrDefault("FORGE_REASONING_SPEED", "medium"),
			Track:          getEnvBoolOrDefault("FORGE_TRACK", false),
			Timeout:        time.Duration(getEnvIntOrDefault("FORGE_TIMEOUT_SEC", 300)) * time.Second,
			PollInterval:   time.Duration(getEnvIntOrDefault("FORGE_POLL_INTERVAL_SEC", 5)) * time.Second,
			MaxRetries:     getEnvIntOrDefault("FORGE_MAX_RETRIES", 5),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Forge.APIKey == "" {
		return ErrMissingAPIKey
	}
	if !forge.ReasoningSpeed(c.Forge.ReasoningSpeed).IsValid() {
		return ErrInvalidSpeed
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
