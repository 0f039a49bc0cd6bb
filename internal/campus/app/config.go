package app

import (
	"os"
	"strconv"
	"time"

	"github.com/campusconnect/campuscore/pkg/jwtx"
)

type Config struct {
	Issuer         string        // Required: issuer claim for tokens
	JWTSecret      string        // Required: HS256 signing secret (min 32 bytes)
	TokenTTL       time.Duration // Optional: identity token lifetime (default: 7 days)
	DevLogin       bool          // Optional: accept the dev bypass token (never in prod)
	BootstrapToken string        // Optional: token required to perform bootstrap

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./campus.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
	NotifyRetention      time.Duration // Read-notification retention (default: 30 days)
	NoticeCacheTTL       time.Duration // Notice feed cache lifetime (default: 5m)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    getEnvOrDefault("AUTH_ISSUER", "campus-core"),
		JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		TokenTTL:  getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultSessionTTL),
		DevLogin:  getEnvBoolOrDefault("AUTH_DEV_LOGIN", false),
		BootstrapToken: os.Getenv(
			"BOOTSTRAP_TOKEN",
		), // Optional: if set, required to perform bootstrap
		DatabaseFile:         getEnvOrDefault("CAMPUS_DATABASE_FILE", "campus.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		NotifyRetention:      getEnvDurationOrDefault("NOTIFY_RETENTION", 30*24*time.Hour),
		NoticeCacheTTL:       getEnvDurationOrDefault("NOTICE_CACHE_TTL", 5*time.Minute),
	}

	// The dev bypass must never survive into production regardless of what
	// the environment says.
	if cfg.Env == "prod" {
		cfg.DevLogin = false
	}

	return cfg
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
