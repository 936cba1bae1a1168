package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the chronicle service
type Config struct {
	// Server
	Port     string `yaml:"port"`
	Host     string `yaml:"host"`
	LogLevel string `yaml:"log_level"`

	// Database
	DatabaseHost     string `yaml:"db_host"`
	DatabasePort     string `yaml:"db_port"`
	DatabaseName     string `yaml:"db_name"`
	DatabaseUser     string `yaml:"db_user"`
	DatabasePassword string `yaml:"-"`
	DatabaseSSLMode  string `yaml:"db_ssl_mode"`

	// Connection pool. The backing store is shared with batch importers,
	// so the API keeps a small bounded pool.
	DatabaseMaxConns int `yaml:"db_max_conns"`
	DatabaseMinConns int `yaml:"db_min_conns"`

	// Content query caps
	ArticleListLimit  int `yaml:"article_list_limit"`
	TweetListLimit    int `yaml:"tweet_list_limit"`
	TrendingListLimit int `yaml:"trending_list_limit"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE) and
// environment variables. Environment variables win over file values.
func Load() (*Config, error) {
	config := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(config, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Server configuration
	config.Port = getEnvOrKeep("PORT", config.Port)
	config.Host = getEnvOrKeep("HOST", config.Host)
	config.LogLevel = getEnvOrKeep("LOG_LEVEL", config.LogLevel)

	// Database configuration
	config.DatabaseHost = getEnvOrKeep("DB_HOST", config.DatabaseHost)
	config.DatabasePort = getEnvOrKeep("DB_PORT", config.DatabasePort)
	config.DatabaseName = getEnvOrKeep("DB_NAME", config.DatabaseName)
	config.DatabaseUser = getEnvOrKeep("DB_USER", config.DatabaseUser)
	config.DatabaseSSLMode = getEnvOrKeep("DB_SSL_MODE", config.DatabaseSSLMode)

	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	var err error
	config.DatabaseMaxConns, err = getIntEnv("DB_MAX_CONNS", config.DatabaseMaxConns)
	if err != nil {
		return nil, err
	}
	config.DatabaseMinConns, err = getIntEnv("DB_MIN_CONNS", config.DatabaseMinConns)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Port:              "3000",
		Host:              "0.0.0.0",
		LogLevel:          "info",
		DatabaseHost:      "chronicle-postgres",
		DatabasePort:      "5432",
		DatabaseName:      "chronicle_db",
		DatabaseUser:      "chronicle_user",
		DatabaseSSLMode:   "require",
		DatabaseMaxConns:  10,
		DatabaseMinConns:  2,
		ArticleListLimit:  1000,
		TweetListLimit:    100,
		TrendingListLimit: 100,
	}
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

// DatabaseURL builds the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.DatabaseMaxConns < 1 {
		return fmt.Errorf("db max conns must be at least 1, got: %d", c.DatabaseMaxConns)
	}
	if c.DatabaseMinConns < 0 || c.DatabaseMinConns > c.DatabaseMaxConns {
		return fmt.Errorf("db min conns must be between 0 and max conns, got: %d", c.DatabaseMinConns)
	}

	if c.ArticleListLimit < 1 || c.TweetListLimit < 1 || c.TrendingListLimit < 1 {
		return fmt.Errorf("list limits must be positive")
	}

	return nil
}

// Helper functions

func getEnvOrKeep(key, current string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return current
}

func getIntEnv(key string, current int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return current, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
