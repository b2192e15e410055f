package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port      int    `validate:"gt=0,lte=65535"`
	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=json text"`

	// APIBaseURL is the trade API root; APIToken authenticates the
	// account endpoints (materials, characters).
	APIBaseURL string `validate:"required,url"`
	APIToken   string `validate:"required"`

	// ByCharacter restricts the recipe set to what the account's
	// characters have actually learned.
	ByCharacter bool

	// FeePercent is the trading-post cut applied to resale revenue.
	FeePercent int `validate:"gte=0,lt=100"`

	// Client cache tuning.
	CacheSize int           `validate:"gt=0"`
	CacheTTL  time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env if present; real environment variables are fine too.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		APIBaseURL:  getEnv("API_BASE_URL", "https://api.guildwars2.com/v2"),
		APIToken:    getEnv("API_TOKEN", ""),
		ByCharacter: getEnv("BY_CHARACTER", "false") == "true",
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.FeePercent, err = getEnvInt("FEE_PERCENT", 15); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = getEnvInt("CACHE_SIZE", 512); err != nil {
		return nil, err
	}

	ttlStr := getEnv("CACHE_TTL", "5m")
	if cfg.CacheTTL, err = time.ParseDuration(ttlStr); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL value: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	str, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
