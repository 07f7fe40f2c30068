// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amaumene/cinefinder/internal/constants"
	apperrors "github.com/amaumene/cinefinder/internal/errors"
)

const (
	// Default configuration file name
	defaultConfigFile = "config.json"
)

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	// Remote catalog credentials, both required
	TMDBToken  string `json:"TMDB_TOKEN"`
	TMDBAPIKey string `json:"TMDB_API_KEY"`

	TMDBBaseURL        string `json:"TMDB_BASE_URL"`
	TMDBLanguage       string `json:"TMDB_LANGUAGE"`
	TMDBDetailLanguage string `json:"TMDB_DETAIL_LANGUAGE"`

	// HTTP server
	Port        string `json:"PORT"`
	HTTPTimeout int    `json:"HTTP_TIMEOUT_SECONDS"`

	// Storage settings
	StoreBackend string `json:"STORE_BACKEND"`
	DatabasePath string `json:"DATABASE_PATH"`
	RedisURL     string `json:"REDIS_URL"`
	CacheSize    int    `json:"CACHE_SIZE"`
	CacheTTL     int    `json:"CACHE_TTL_HOURS"`

	LogLevel  string `json:"LOG_LEVEL"`
	LogFormat string `json:"LOG_FORMAT"`
}

// Load reads configuration from an optional JSON file and environment variables.
// Environment variables take precedence over file values.
// Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := Defaults()

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, apperrors.NewConfigurationError("failed to load config file", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns a Config populated with default values only.
func Defaults() *Config {
	return &Config{
		TMDBBaseURL:        constants.DefaultTMDBBaseURL,
		TMDBLanguage:       constants.DefaultLanguage,
		TMDBDetailLanguage: constants.DefaultDetailLanguage,
		Port:               constants.DefaultPort,
		HTTPTimeout:        int(constants.HTTPTimeout / time.Second),
		StoreBackend:       constants.StoreBackendBolt,
		DatabasePath:       constants.DefaultDatabasePath,
		CacheSize:          constants.DefaultCacheSize,
		CacheTTL:           constants.DefaultCacheTTL,
		LogLevel:           constants.DefaultLogLevel,
	}
}

// loadFromEnv overlays non-empty environment variables.
func (c *Config) loadFromEnv() error {
	setString(&c.TMDBToken, "TMDB_TOKEN")
	setString(&c.TMDBAPIKey, "TMDB_API_KEY")
	setString(&c.TMDBBaseURL, "TMDB_BASE_URL")
	setString(&c.TMDBLanguage, "TMDB_LANGUAGE")
	setString(&c.TMDBDetailLanguage, "TMDB_DETAIL_LANGUAGE")
	setString(&c.Port, "PORT")
	setString(&c.StoreBackend, "STORE_BACKEND")
	setString(&c.DatabasePath, "DATABASE_PATH")
	setString(&c.RedisURL, "REDIS_URL")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.LogFormat, "LOG_FORMAT")

	intKeys := []struct {
		key string
		dst *int
	}{
		{"HTTP_TIMEOUT_SECONDS", &c.HTTPTimeout},
		{"CACHE_SIZE", &c.CacheSize},
		{"CACHE_TTL_HOURS", &c.CacheTTL},
	}
	for _, k := range intKeys {
		if err := setInt(k.dst, k.key); err != nil {
			return err
		}
	}
	return nil
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TMDBToken) == "" {
		return apperrors.NewConfigurationError("TMDB_TOKEN is required", nil)
	}
	if strings.TrimSpace(c.TMDBAPIKey) == "" {
		return apperrors.NewConfigurationError("TMDB_API_KEY is required", nil)
	}
	if strings.TrimSpace(c.TMDBBaseURL) == "" {
		return apperrors.NewConfigurationError("TMDB_BASE_URL must not be empty", nil)
	}

	switch c.StoreBackend {
	case constants.StoreBackendBolt:
		if c.DatabasePath == "" {
			return apperrors.NewConfigurationError("DATABASE_PATH is required for the bolt backend", nil)
		}
	case constants.StoreBackendRedis:
		if c.RedisURL == "" {
			return apperrors.NewConfigurationError("REDIS_URL is required for the redis backend", nil)
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unknown STORE_BACKEND %q", c.StoreBackend), nil)
	}

	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = constants.DefaultCacheTTL
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = int(constants.HTTPTimeout / time.Second)
	}

	return nil
}

// Timeout returns the per-request catalog timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// CacheTTLDuration returns the genre cache lifetime.
func (c *Config) CacheTTLDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Hour
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return apperrors.NewConfigurationError(fmt.Sprintf("%s must be an integer", key), err)
	}
	*dst = n
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
