package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogMongo  = "mongo"
	CatalogSQLite = "sqlite"
)

type Config struct {
	HTTPPort           string
	MongoURI           string
	MongoDBName        string
	CatalogBackend     string
	SQLitePath         string
	MigrationsPath     string
	RedisAddr          string
	RedisPassword      string
	KafkaBrokers       []string
	KafkaTopic         string
	CartID             string
	SeedCatalog        bool
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	MaxRequestBodySize int64
	CORSAllowedOrigins []string
	LogLevel           string
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:           getEnv("PORT", "5000"),
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGODB_DB", "vibecommerce"),
		CatalogBackend:     getEnv("CATALOG_BACKEND", CatalogMongo),
		SQLitePath:         getEnv("SQLITE_PATH", "./data/products.db"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "./internal/repository/migrations"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:       splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "checkout-completed"),
		CartID:             getEnv("CART_ID", "default"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.SeedCatalog, err = strconv.ParseBool(getEnv("SEED_CATALOG", "true")); err != nil {
		return nil, fmt.Errorf("invalid SEED_CATALOG: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	if cfg.MaxRequestBodySize, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid MAX_BODY_BYTES: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CatalogBackend {
	case CatalogMongo, CatalogSQLite:
	default:
		return fmt.Errorf("invalid CATALOG_BACKEND %q: want %q or %q", c.CatalogBackend, CatalogMongo, CatalogSQLite)
	}
	if c.CartID == "" {
		return errors.New("CART_ID must not be empty")
	}
	if c.MaxRequestBodySize <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
