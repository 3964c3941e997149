// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
honoured for development, and the legacy 'dbconfig.yml' file of the dashboard
can still supply the database connection string.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// # Configuration Schema

// Config holds all runtime configuration for the Gutensearch server and CLI.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"json"`

	// Relational Database (PostgreSQL). Either DATABASE_URL or DB_CONFIG_PATH must be set.
	DatabaseURL  string `env:"DATABASE_URL"`
	DBConfigPath string `env:"DB_CONFIG_PATH"`

	// DBConnectAttempts bounds the startup connection retries.
	DBConnectAttempts uint `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`

	// QueryTimeout bounds every search round trip.
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"30s"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Optional: caching and the query log are disabled without it.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"gutensearch.org"`
}

// legacyDBConfig mirrors the dashboard's dbconfig.yml layout.
type legacyDBConfig struct {
	Postgres struct {
		ConString string `yaml:"constring"`
	} `yaml:"Postgres"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// A missing .env file is the normal case outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.DatabaseURL == "" && cfg.DBConfigPath != "" {
		dsn, err := readLegacyDSN(cfg.DBConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.DatabaseURL = dsn
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readLegacyDSN extracts Postgres.constring from a YAML file.
func readLegacyDSN(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var legacy legacyDBConfig
	if err := yaml.Unmarshal(raw, &legacy); err != nil {
		return "", fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return legacy.Postgres.ConString, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return errors.New("config: DATABASE_URL or DB_CONFIG_PATH with Postgres.constring is required")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("config: QUERY_TIMEOUT must be positive, got %s", c.QueryTimeout)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("config: LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasCache reports whether a Redis URL was configured.
func (c *Config) HasCache() bool {
	return c.RedisURL != ""
}
