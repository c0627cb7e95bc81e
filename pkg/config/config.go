package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Swagger    SwaggerConfig
	Pagination PaginationConfig
	RateLimit  RateLimitConfig
	LogLevel   slog.Level
}

type ServerConfig struct {
	Port    string
	BaseURL string
}

type DBConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts int
	ConnectDelay    time.Duration
}

type SwaggerConfig struct {
	Title        string
	Description  string
	Version      string
	ContactName  string
	ContactEmail string
}

type PaginationConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8060"),
			BaseURL: getEnv("SERVER_BASE_URL", ""),
		},
		DB: DBConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "postgres"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "program"),
			Password:        getEnv("DB_PASSWORD", "test"),
			Name:            getEnv("DB_NAME", "library"),
			Path:            getEnv("DB_PATH", "library.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			ConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 10),
			ConnectDelay:    getEnvDuration("DB_CONNECT_DELAY", 5*time.Second),
		},
		Swagger: SwaggerConfig{
			Title:        getEnv("SWAGGER_TITLE", "Library System API"),
			Description:  getEnv("SWAGGER_DESCRIPTION", "CRUD API for books, members and loans"),
			Version:      getEnv("SWAGGER_VERSION", "v1"),
			ContactName:  getEnv("SWAGGER_CONTACT_NAME", "Library System"),
			ContactEmail: getEnv("SWAGGER_CONTACT_EMAIL", "library@example.com"),
		},
		Pagination: PaginationConfig{
			DefaultPageSize: getEnvInt("PAGE_SIZE_DEFAULT", 10),
			MaxPageSize:     getEnvInt("PAGE_SIZE_MAX", 50),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 40),
		},
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// DSN is only meaningful for the postgres driver; sqlite uses Path.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port)
}

// Target describes the database without credentials, for logs.
func (c DBConfig) Target() string {
	if c.Driver == DriverSQLite {
		return "sqlite:" + c.Path
	}
	return fmt.Sprintf("postgres:%s@%s:%s/%s", c.User, c.Host, c.Port, c.Name)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
