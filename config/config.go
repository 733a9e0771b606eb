package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string

	// Remote API
	APIBaseURL     string
	RequestTimeout time.Duration

	// Local state directory (cart/wishlist/token snapshots)
	StateDir string

	// Outbound rate limiting
	APIRequestsPerSecond float64
	APIBurst             int

	// Cache TTLs
	CacheBookListTTL time.Duration
	CacheBookTTL     time.Duration

	// Business rules
	MaxCartQuantity    int
	PremiumDiscountPct float64
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// Default fallback: .env for local dev. Missing file is fine, we
		// rely on system env vars in that case.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		RequestTimeout: getDurationEnv("API_REQUEST_TIMEOUT", 10*time.Second),

		StateDir: getEnv("STATE_DIR", defaultStateDir()),

		// Polite client defaults: 10 req/s with a small burst headroom
		APIRequestsPerSecond: getFloatEnv("API_RATE_LIMIT", 10),
		APIBurst:             getIntEnv("API_RATE_BURST", 20),

		// Cache defaults: 2m book lists, 5m single books
		CacheBookListTTL: getDurationEnv("CACHE_BOOK_LIST_TTL", 2*time.Minute),
		CacheBookTTL:     getDurationEnv("CACHE_BOOK_TTL", 5*time.Minute),

		MaxCartQuantity:    getIntEnv("MAX_CART_QUANTITY", 99),
		PremiumDiscountPct: getFloatEnv("PREMIUM_DISCOUNT_PCT", 10),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.APIBaseURL == "" {
		log.Fatal("CRITICAL: API_BASE_URL environment variable is required")
	}
	if c.StateDir == "" {
		log.Fatal("CRITICAL: STATE_DIR could not be resolved")
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".boipoka"
	}
	return filepath.Join(base, "boipoka")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("Invalid float for %s, using fallback", key)
	}
	return fallback
}
