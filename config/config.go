package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AnthoniusHendriyanto/session-service/pkg/constant"
	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	Port          string
	DBURL         string
	AuthSecret    string
	TokenTTL      time.Duration
	CookieTTLDays int
	BcryptCost    int
}

// Load reads config/.env.<ENV> (if present) and then the process
// environment. Real env vars win over file values. It fails when a
// required variable is missing so the service refuses to start
// without a signing secret or a store DSN.
func Load() (*Config, error) {
	env := getEnv("ENV", "development")

	// Best effort: production deployments supply plain env vars.
	_ = godotenv.Load(filepath.Join("config", ".env."+env))

	secret, err := mustGetEnv("AUTH_SECRET")
	if err != nil {
		return nil, err
	}
	dbURL, err := mustGetEnv("DB_URL")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:           env,
		Port:          getEnv("PORT", "8080"),
		DBURL:         dbURL,
		AuthSecret:    secret,
		TokenTTL:      getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		CookieTTLDays: getEnvAsInt("COOKIE_TTL_DAYS", 7),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", constant.DefaultBcryptCost),
	}

	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	if cfg.CookieTTLDays <= 0 {
		return nil, fmt.Errorf("COOKIE_TTL_DAYS must be positive, got %d", cfg.CookieTTLDays)
	}

	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}
