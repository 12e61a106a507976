package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	Env             string
	NewsAPIKey      string
	NewsAPIURL      string
	DefaultLanguage string
	DefaultLimit    int
	AllowedOrigins  []string
	ProviderTimeout time.Duration
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "production"),
		NewsAPIKey:      os.Getenv("NEWS_API_KEY"),
		NewsAPIURL:      getEnv("NEWS_API_URL", "https://api.newsdata.example/v1"),
		DefaultLanguage: getEnv("NEWS_DEFAULT_LANGUAGE", "en"),
		DefaultLimit:    getEnvInt("NEWS_DEFAULT_LIMIT", 10),
		AllowedOrigins:  parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		ProviderTimeout: time.Duration(getEnvInt("NEWS_PROVIDER_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

// Validate reports whether required settings are present. A missing API key is
// logged but does not stop the service, matching the health endpoint's job of
// surfacing a broken provider connection.
func (c *Config) Validate() bool {
	if c.NewsAPIKey == "" {
		slog.Warn("NEWS_API_KEY is not set, provider requests will be rejected upstream")
		return false
	}
	return true
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		slog.Warn("invalid environment value, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return parsed
}

func parseOrigins(raw string) []string {
	if raw == "*" {
		return []string{"*"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
