package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Env string `env:"ENV" env-default:"development"`

	// Server configuration
	ServerHost     string        `env:"SERVER_HOST" env-default:"0.0.0.0"`
	ServerPort     string        `env:"SERVER_PORT" env-default:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`

	// Database configuration
	DBDriver      string `env:"DB_DRIVER" env-default:"postgres"`
	DBHost        string `env:"DB_HOST" env-default:"localhost"`
	DBPort        string `env:"DB_PORT" env-default:"5432"`
	DBUser        string `env:"DB_USER" env-default:"postgres"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME" env-default:"recettes"`
	DBSSLMode     string `env:"DB_SSL_MODE" env-default:"disable"`
	SQLitePath    string `env:"SQLITE_PATH" env-default:"recettes.db"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" env-default:"true"`

	// API behavior
	ExposeStoreErrors  bool    `env:"EXPOSE_STORE_ERRORS" env-default:"true"`
	StatsAverageRating float64 `env:"STATS_AVERAGE_RATING" env-default:"4.8"`
	StatsAverageTime   int     `env:"STATS_AVERAGE_TIME" env-default:"30"`

	// Image storage
	S3BucketName   string        `env:"S3_BUCKET_NAME"`
	AWSRegion      string        `env:"AWS_REGION"`
	ImageURLExpiry time.Duration `env:"IMAGE_URL_EXPIRY" env-default:"1h"`
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	// A .env file is a convenience for local runs; production relies on the real environment.
	if os.Getenv("ENV") != string(Production) {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.DBPassword == "" {
		cfg.DBPassword = readSecret("db_password")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Environment returns the runtime environment, defaulting to development
func (c *Config) Environment() Environment {
	switch Environment(strings.ToLower(c.Env)) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsProduction returns true if the configured environment is production
func (c *Config) IsProduction() bool {
	return c.Environment() == Production
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerHost, c.ServerPort)
}

// PostgresDSN builds the connection string for the postgres driver
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
