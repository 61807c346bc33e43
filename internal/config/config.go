package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
	Metrics  MetricsConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	Host              string
	Port              string
	Database          string
	User              string
	Password          string
	MaxConns          int32
	ConnectTimeoutSec int32
	ConnMaxIdleSec    int32
	SchemaInitFatal   bool
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// MetricsConfig controls the Prometheus listener. An empty Addr disables it.
type MetricsConfig struct {
	Addr string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "guestbook-service"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("PORT", "3000"),
			Version: getEnv("APP_VERSION", "1.0.0"),
		},
		Postgres: PostgresConfig{
			Host:              getEnv("DB_HOST", "postgres-service"),
			Port:              getEnv("DB_PORT", "5432"),
			Database:          getEnv("DB_NAME", "webapp_db"),
			User:              getEnv("DB_USER", "webapp_user"),
			Password:          getEnv("DB_PASSWORD", "webapp_password"),
			MaxConns:          int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			ConnectTimeoutSec: int32(getEnvAsInt("DB_CONNECT_TIMEOUT_SECONDS", 2)),
			ConnMaxIdleSec:    int32(getEnvAsInt("DB_CONN_MAX_IDLE_SECONDS", 30)),
			SchemaInitFatal:   getEnvAsBool("DB_SCHEMA_INIT_FATAL", false),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// DSN builds a pgx connection string from the individual parts.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		p.User, p.Password, p.Host, p.Port, p.Database)
}

// ConnectTimeout returns the pool connection timeout duration.
func (p PostgresConfig) ConnectTimeout() time.Duration {
	if p.ConnectTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(p.ConnectTimeoutSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
