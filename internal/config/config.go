package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/zizouhuweidi/trivia/internal/database"
)

// Supported storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the runtime settings of the API server
type Config struct {
	ServerAddr string
	LogLevel   log.Lvl

	DBDriver   string
	Postgres   *database.PostgresConfig
	SQLitePath string

	RedisEnabled bool
	Redis        *database.RedisConfig

	QuizRateLimit  int
	QuizRateWindow time.Duration
}

// Load reads configuration from a .env file (when present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		Postgres: &database.PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:   getEnv("POSTGRES_DB", "trivia"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		SQLitePath: getEnv("SQLITE_PATH", "trivia.db"),
		Redis: &database.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
	}

	var err error
	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.RedisEnabled, err = strconv.ParseBool(getEnv("REDIS_ENABLED", "false")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_ENABLED: %w", err)
	}

	if cfg.Redis.DB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil || cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("invalid REDIS_DB %q", os.Getenv("REDIS_DB"))
	}

	if cfg.Redis.DialTimeout, err = time.ParseDuration(getEnv("REDIS_DIAL_TIMEOUT", "10s")); err != nil || cfg.Redis.DialTimeout <= 0 {
		return nil, fmt.Errorf("invalid REDIS_DIAL_TIMEOUT %q", os.Getenv("REDIS_DIAL_TIMEOUT"))
	}

	if cfg.QuizRateLimit, err = strconv.Atoi(getEnv("QUIZ_RATE_LIMIT", "60")); err != nil || cfg.QuizRateLimit <= 0 {
		return nil, fmt.Errorf("invalid QUIZ_RATE_LIMIT %q", os.Getenv("QUIZ_RATE_LIMIT"))
	}

	if cfg.QuizRateWindow, err = time.ParseDuration(getEnv("QUIZ_RATE_WINDOW", "1m")); err != nil || cfg.QuizRateWindow <= 0 {
		return nil, fmt.Errorf("invalid QUIZ_RATE_WINDOW %q", os.Getenv("QUIZ_RATE_WINDOW"))
	}

	return cfg, nil
}

func parseLogLevel(raw string) (log.Lvl, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("invalid LOG_LEVEL %q", raw)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
