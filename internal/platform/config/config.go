package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	DBMaxConns         int32
	MigrationsPath     string
	Port               string
	IsProduction       bool
	LogLevel           slog.Level
	JWTSecret          string
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	AdminAPIKey        string
	AuthRateLimit      string // ulule/limiter formatted rate, e.g. "5-M"
	CORSAllowedOrigins []string

	AccrualSchedule   string // standard 5-field cron expression
	AccrualLocation   *time.Location
	AccrualWorkers    int
	AccrualRunOnStart bool

	// Catalog is built once here and never mutated afterwards.
	Catalog domain.Catalog
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "autoinvest-app")
	v.SetDefault("ADMIN_API_KEY", "")
	v.SetDefault("AUTH_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ACCRUAL_SCHEDULE", "0 0 * * *")
	v.SetDefault("ACCRUAL_TIMEZONE", "UTC")
	v.SetDefault("ACCRUAL_WORKERS", 4)
	v.SetDefault("ACCRUAL_RUN_ON_START", false)
	v.SetDefault("TIER_CATALOG_FILE", "")

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		DBMaxConns:        v.GetInt32("DB_MAX_CONNS"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		AdminAPIKey:       v.GetString("ADMIN_API_KEY"),
		AuthRateLimit:     v.GetString("AUTH_RATE_LIMIT"),
		AccrualSchedule:   v.GetString("ACCRUAL_SCHEDULE"),
		AccrualWorkers:    v.GetInt("ACCRUAL_WORKERS"),
		AccrualRunOnStart: v.GetBool("ACCRUAL_RUN_ON_START"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		slog.Warn("Invalid value for JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.Duration("default", jwtExpiryDuration))
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set. Admin routes will reject every request.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.AccrualLocation, err = time.LoadLocation(v.GetString("ACCRUAL_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCRUAL_TIMEZONE: %w", err)
	}
	if cfg.AccrualWorkers <= 0 {
		cfg.AccrualWorkers = 1
	}

	tiers := domain.DefaultTiers()
	if path := v.GetString("TIER_CATALOG_FILE"); path != "" {
		tiers, err = LoadTiersFile(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.Catalog, err = domain.NewCatalog(tiers)
	if err != nil {
		return nil, fmt.Errorf("invalid tier catalog: %w", err)
	}

	return cfg, nil
}
