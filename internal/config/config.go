package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	ServerPort string

	StoreDriver    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBMaxConns     int32
	SQLitePath     string
	MigrateOnStart bool

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel      slog.Level
	LogFormat     string
	AllowedOrigin string
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StoreDriver:   getEnv("STORE_DRIVER", StoreMemory),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "blog"),
		DBPassword:    getEnv("DB_PASSWORD", "blog_dev_password"),
		DBName:        getEnv("DB_NAME", "blog"),
		SQLitePath:    getEnv("SQLITE_PATH", "blog.db"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}

	switch cfg.StoreDriver {
	case StoreMemory, StorePostgres, StoreSQLite:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: want memory, postgres or sqlite", cfg.StoreDriver)
	}

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil || maxConns < 1 {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS %q", os.Getenv("DB_MAX_CONNS"))
	}
	cfg.DBMaxConns = int32(maxConns)

	cfg.MigrateOnStart, err = strconv.ParseBool(getEnv("MIGRATE_ON_START", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATE_ON_START: %w", err)
	}

	cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want json or text", cfg.LogFormat)
	}

	return cfg, nil
}

// PostgresDSN builds the connection URL for the configured Postgres database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
