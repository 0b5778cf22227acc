package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Required: expected issuer claim on access tokens
	JWTSecret string // Required: HS256 secret shared with the identity provider

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./dashboard.db)
	SignupURL            string        // Optional: base URL invitation tokens are appended to
	ResendAPIKey         string        // Optional: Resend API key; invites are logged but not emailed without it
	ResendFrom           string        // Optional: From address for invitation emails
	HousekeepingSchedule string        // Optional: cron expression for the maintenance sweep (default: @hourly)
	ResolvedRetention    time.Duration // Optional: how long resolved intelligence items are kept (default: 30 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("DASH_ISSUER", "peakform-identity"),
		JWTSecret:            os.Getenv("DASH_JWT_SECRET"),
		DatabaseFile:         getEnvOrDefault("DASH_DATABASE_FILE", "dashboard.db"),
		SignupURL:            getEnvOrDefault("DASH_SIGNUP_URL", "http://localhost:3000/signup"),
		ResendAPIKey:         os.Getenv("RESEND_API_KEY"),
		ResendFrom:           getEnvOrDefault("RESEND_FROM", "PeakForm <onboarding@peakform.app>"),
		HousekeepingSchedule: getEnvOrDefault("HOUSEKEEPING_SCHEDULE", "@hourly"),
		ResolvedRetention:    getEnvDurationOrDefault("RESOLVED_RETENTION", 30*24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations the service cannot safely start with.
func (cfg Config) Validate() error {
	if cfg.JWTSecret == "" {
		return errors.New("DASH_JWT_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Integer values are taken as hours, matching how operators tend to set
	// retention windows.
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
