package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PlatformAPIURL         string
	DatabaseURL            string
	WalletJWTSecret        string
	WalletJWTIssuer        string
	PlatformRetryMax       int
	PlatformRetryBaseDelay time.Duration
	CatalogRefreshInterval time.Duration
	HTTPPort               string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		PlatformAPIURL:         envOrDefault("PLATFORM_API_URL", "https://api.colombiainvierte.co"),
		DatabaseURL:            envOrDefaultWarn("DATABASE_URL", ""),
		WalletJWTSecret:        envOrDefaultWarn("WALLET_JWT_SECRET", ""),
		WalletJWTIssuer:        envOrDefault("WALLET_JWT_ISSUER", "invierte-wallet-bridge"),
		PlatformRetryMax:       envOrDefaultInt("PLATFORM_RETRY_MAX", 5),
		PlatformRetryBaseDelay: envOrDefaultDuration("PLATFORM_RETRY_BASE_DELAY", 2*time.Second),
		CatalogRefreshInterval: envOrDefaultDuration("CATALOG_REFRESH_INTERVAL", 1*time.Hour),
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
