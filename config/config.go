package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	SERVER_REQUEST_TIMEOUT=10s
//	RATE_LIMIT_PER_MINUTE=60
//	POSTGRES_ENABLED=true
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=shukujitsu
//	POSTGRES_SSLMODE=disable
//	HOLIDAY_CACHE_SIZE=64
//	HOLIDAY_MATERIALIZE_FROM=2022
//	HOLIDAY_MATERIALIZE_TO=2050
//	HOLIDAY_PARALLEL=0
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Holidays HolidaysConfig // holiday engine, cache and materialization settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Deadline applied to every request context
	RateLimit      int           // Requests allowed per client IP per minute
}

// PostgresConfig defines connection details for PostgreSQL.
//
// PostgreSQL is optional: the API computes holidays in memory and only
// readiness checks and the migrate/materialize modes need a database.
type PostgresConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// HolidaysConfig tunes the year cache and the materialize mode.
type HolidaysConfig struct {
	CacheSize       int // Years kept in the LRU cache
	MaterializeFrom int // First year written by --mode=materialize
	MaterializeTo   int // Last year written by --mode=materialize
	Parallel        int // Concurrent years while materializing (0 = NumCPU)
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("POSTGRES_ENABLED", false)
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "shukujitsu")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("HOLIDAY_CACHE_SIZE", 64)
	viper.SetDefault("HOLIDAY_MATERIALIZE_FROM", 2022)
	viper.SetDefault("HOLIDAY_MATERIALIZE_TO", 2050)
	viper.SetDefault("HOLIDAY_PARALLEL", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("SERVER_REQUEST_TIMEOUT"),
			RateLimit:      viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Enabled:  viper.GetBool("POSTGRES_ENABLED"),
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Holidays: HolidaysConfig{
			CacheSize:       viper.GetInt("HOLIDAY_CACHE_SIZE"),
			MaterializeFrom: viper.GetInt("HOLIDAY_MATERIALIZE_FROM"),
			MaterializeTo:   viper.GetInt("HOLIDAY_MATERIALIZE_TO"),
			Parallel:        viper.GetInt("HOLIDAY_PARALLEL"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the database/sql connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// missingFields lists the required variables absent from cfg.
// Postgres settings are only required when POSTGRES_ENABLED is set.
func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Holidays.MaterializeFrom > cfg.Holidays.MaterializeTo {
		missing = append(missing, "HOLIDAY_MATERIALIZE_FROM<=HOLIDAY_MATERIALIZE_TO")
	}
	if !cfg.Postgres.Enabled {
		return missing
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	return missing
}

// validateConfig terminates the application when required variables are missing.
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
