package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	ProjectName string `yaml:"project_name" env:"PROJECT_NAME"`
	Env         string `yaml:"env" env:"ENV"`

	Server struct {
		Port string `yaml:"port" env:"PORT"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url" env:"DATABASE_URL"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		EnsureExists    bool   `yaml:"ensure_exists" env:"DB_ENSURE_EXISTS"`
	} `yaml:"database"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"BACKEND_CORS_ORIGINS"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Metrics struct {
		Enabled bool `yaml:"enabled" env:"METRICS_ENABLED"`
	} `yaml:"metrics"`
}

// AllowAllOrigins is the CORS wildcard used when no explicit origins are configured.
const AllowAllOrigins = "*"

// LoadConfig loads configuration from a file, a .env file and environment variables,
// in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = []string{AllowAllOrigins}
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.ProjectName = "HRMS Lite Backend"
	config.Env = "development"

	config.Server.Port = "8080"

	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.EnsureExists = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Metrics.Enabled = true
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.New("database URL is required")
	}

	dsn, err := url.Parse(config.Database.URL)
	if err != nil {
		return fmt.Errorf("invalid database URL: %w", err)
	}
	if dsn.Scheme != "postgres" && dsn.Scheme != "postgresql" {
		return fmt.Errorf("database URL must use the postgres scheme, got %q", dsn.Scheme)
	}
	if strings.TrimPrefix(dsn.Path, "/") == "" {
		return errors.New("database URL must name a database")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection lifetime: %w", err)
	}

	if config.Database.MaxIdleConns > config.Database.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) exceed max open connections (%d)",
			config.Database.MaxIdleConns, config.Database.MaxOpenConns)
	}

	for _, origin := range config.CORS.AllowedOrigins {
		if origin == AllowAllOrigins {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid CORS origin %q", origin)
		}
	}

	return nil
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DatabaseName returns the database named by the connection URL.
func (c *Config) DatabaseName() string {
	dsn, err := url.Parse(c.Database.URL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(dsn.Path, "/")
}
