package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Tracking TrackingConfig
	Export   ExportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	AdminToken string
}

// TrackingConfig holds the session tracking parameters.
type TrackingConfig struct {
	// StabilizationDelay is how long a geofence value must stay unchanged
	// before a transition is acted on.
	StabilizationDelay time.Duration
	// MaxSessionAge force-closes sessions that stay open longer than this.
	// Zero disables the forced close job.
	MaxSessionAge time.Duration
}

type ExportConfig struct {
	AppsScriptURL string
	SheetName     string
}

func Load() (*Config, error) {
	// A missing .env file is fine; env vars take over in production.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "worktime"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AdminToken: getEnv("ADMIN_API_TOKEN", ""),
	}

	// Tracking configuration
	stabilization, err := time.ParseDuration(getEnv("STABILIZATION_DELAY", "310s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STABILIZATION_DELAY: %w", err)
	}

	maxSessionAge, err := time.ParseDuration(getEnv("MAX_SESSION_AGE", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SESSION_AGE: %w", err)
	}

	config.Tracking = TrackingConfig{
		StabilizationDelay: stabilization,
		MaxSessionAge:      maxSessionAge,
	}

	// Sheet export configuration (optional; empty URL disables the sink)
	config.Export = ExportConfig{
		AppsScriptURL: getEnv("APPS_SCRIPT_URL", ""),
		SheetName:     getEnv("EXPORT_SHEET_NAME", "Time Tracker"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Tracking.StabilizationDelay <= 0 {
		return fmt.Errorf("STABILIZATION_DELAY must be positive")
	}
	if c.Tracking.MaxSessionAge < 0 {
		return fmt.Errorf("MAX_SESSION_AGE must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
