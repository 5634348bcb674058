package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_ADDR", "LOG_LEVEL", "DB_DRIVER", "REDIS_ENABLED", "QUIZ_RATE_LIMIT", "QUIZ_RATE_WINDOW", "POSTGRES_DB",
		"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_DIAL_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, log.INFO, cfg.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "trivia", cfg.Postgres.DBName)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, 60, cfg.QuizRateLimit)
	assert.Equal(t, time.Minute, cfg.QuizRateWindow)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 10*time.Second, cfg.Redis.DialTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "data/trivia.db")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("QUIZ_RATE_LIMIT", "5")
	t.Setenv("QUIZ_RATE_WINDOW", "30s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_DIAL_TIMEOUT", "3s")
	t.Setenv("POSTGRES_HOST", "db")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "data/trivia.db", cfg.SQLitePath)
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, 5, cfg.QuizRateLimit)
	assert.Equal(t, 30*time.Second, cfg.QuizRateWindow)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 3*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, "db", cfg.Postgres.Host)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":          "loud",
		"DB_DRIVER":          "mysql",
		"REDIS_ENABLED":      "maybe",
		"QUIZ_RATE_LIMIT":    "-1",
		"QUIZ_RATE_WINDOW":   "soon",
		"REDIS_DB":           "-1",
		"REDIS_DIAL_TIMEOUT": "0s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestPostgresConnString(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	cfg.Postgres.User = "trivia"
	cfg.Postgres.Password = "p@ss word"
	cfg.Postgres.Host = "db"
	cfg.Postgres.Port = "5433"
	cfg.Postgres.DBName = "trivia_test"
	cfg.Postgres.SSLMode = "disable"

	assert.Equal(t, "postgres://trivia:p%40ss%20word@db:5433/trivia_test?sslmode=disable", cfg.Postgres.ConnString())
}
