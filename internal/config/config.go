package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the full server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from an optional YAML file, with environment
// variables expanded inside it. A .env file in the working directory is
// loaded first when present. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only exists in dev setups.
	_ = godotenv.Load(".env")

	config := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expanded, config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = envOr("HOMESTOCK_ADDR", ":8099")
	}
	if c.Database.Path == "" {
		c.Database.Path = envOr("HOMESTOCK_DB", "data/local.db")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = envOr("HOMESTOCK_LOG_LEVEL", "info")
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
}

// Validate checks the loaded configuration for impossible values.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}
	if c.Logging.Output == "file" && c.Logging.FilePath == "" {
		return errors.New("logging.output=file requires logging.file_path")
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
