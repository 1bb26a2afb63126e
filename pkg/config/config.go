package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	SecretKey     string
	SessionIssuer string
	SessionTTL    time.Duration
	CookieSecure  bool

	// RedisURL enables the shared session revocation store when set.
	RedisURL string
	// SeedFile points to a YAML list of users created on startup if missing.
	SeedFile string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10),
		SecretKey:     getEnv("SECRET_KEY", "dev-secret-change"),
		SessionIssuer: getEnv("SESSION_ISSUER", "rolepanel"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		RedisURL:      os.Getenv("REDIS_URL"),
		SeedFile:      os.Getenv("SEED_FILE"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
