package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort              = "5000"
	defaultCORSOrigins       = "https://wealthsync-frontend3.onrender.com,http://localhost:3000"
	defaultRateLimit         = "100-M"
	defaultRatesSyncSchedule = "@every 6h"
	defaultRatesFeedURL      = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"
)

// Config holds application configuration.
type Config struct {
	Port          string `validate:"required,numeric"`
	IsProduction  bool
	LogLevel      string `validate:"oneof=debug info warn error"`
	DatabaseURL   string
	EnableDBCheck bool

	CORSAllowedOrigins []string `validate:"dive,required"`
	RateLimit          string   // limiter format "<limit>-<period>", e.g. "100-M"; empty disables

	RatesSyncEnabled  bool
	RatesSyncSchedule string `validate:"required_if=RatesSyncEnabled true"`
	RatesFeedURL      string `validate:"omitempty,url"`

	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("RATES_SYNC_ENABLED", false)
	v.SetDefault("RATES_SYNC_SCHEDULE", defaultRatesSyncSchedule)
	v.SetDefault("RATES_FEED_URL", defaultRatesFeedURL)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// Actual environment variables override the defaults and the .env file.
	// An explicitly empty RATE_LIMIT disables limiting, so empty values count.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          strings.TrimSpace(v.GetString("RATE_LIMIT")),
		RatesSyncEnabled:   v.GetBool("RATES_SYNC_ENABLED"),
		RatesSyncSchedule:  v.GetString("RATES_SYNC_SCHEDULE"),
		RatesFeedURL:       v.GetString("RATES_FEED_URL"),
	}

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	shutdownTimeout, err := time.ParseDuration(shutdownStr)
	if err != nil {
		shutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, shutdownTimeout)
	}
	cfg.ShutdownTimeout = shutdownTimeout

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Budget history is kept in memory and lost on restart.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
