package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	AppTagline  string
	ContentPath string

	// Backend API
	APIBaseURL string
	APITimeout time.Duration

	// Database for sessions and plan snapshots (default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	SessionSecret  string
	SessionExpiry  time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// Features
	ChatEnabled bool

	// Dashboard
	DashboardTimeout time.Duration
	ProfileTimeout   time.Duration

	// Observability (optional)
	SentryDSN string

	// Progress exports (optional, S3-compatible)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName:     envString("APP_NAME", "OptiFit"),
		AppEnv:      envRequired("APP_ENV"), // 'development' or 'production'
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		AppTagline:  envString("APP_TAGLINE", "Your AI fitness coach"),
		ContentPath: envString("CONTENT_PATH", "content"),

		APIBaseURL: envRequired("API_BASE_URL"),
		APITimeout: envDuration("API_TIMEOUT", 30*time.Second),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/optifit.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		SessionSecret:  envRequired("SESSION_SECRET"),
		SessionExpiry:  envDuration("SESSION_EXPIRY", 168*time.Hour), // 7 days
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow: envDuration("AUTH_RATE_WINDOW", 15*time.Minute),

		ChatEnabled: envBool("CHAT_ENABLED", true),

		DashboardTimeout: envDuration("DASHBOARD_TIMEOUT", 10*time.Second),
		ProfileTimeout:   envDuration("PROFILE_TIMEOUT", 5*time.Second),

		SentryDSN: envString("SENTRY_DSN", ""),

		S3Region:        envString("S3_REGION", "us-east-1"),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction rejects settings that are only acceptable locally.
func validateProduction(cfg *Config) {
	if len(cfg.SessionSecret) < 32 {
		slog.Error("production deployment requires SESSION_SECRET of at least 32 characters")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ExportEnabled reports whether progress exports go to object storage.
func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy with only the fields safe to expose in templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:    c.AppName,
		AppEnv:     c.AppEnv,
		AppURL:     c.AppURL,
		Port:       c.Port,
		AppTagline: c.AppTagline,

		ChatEnabled: c.ChatEnabled,

		S3Endpoint: c.S3Endpoint, // for CSP
		S3Bucket:   c.S3Bucket,
	}
}
