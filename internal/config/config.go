package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	TemplateGlob string

	APIBaseURL string
	APITimeout time.Duration

	SessionSecret string
	SessionCookie string
	SessionTTL    time.Duration

	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == prodString

	// Allowed origins for production (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Template location (default: web/templates relative to the working dir)
	cfg.TemplateGlob = getEnv("TEMPLATE_GLOB", "web/templates/*.tmpl")

	// Reservation backend base URL is required
	cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}

	var err error

	// Timeout for backend calls (default: 10s)
	cfg.APITimeout, err = getEnvAsDuration("API_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	// Session secret signs the session cookie and is required
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	// Session cookie name (default: hb_session)
	cfg.SessionCookie = getEnv("SESSION_COOKIE", "hb_session")

	// Session lifetime (default: 72h)
	cfg.SessionTTL, err = getEnvAsDuration("SESSION_TTL", 72*time.Hour)
	if err != nil {
		return nil, err
	}

	// Room listing cache lifetime (default: 5m)
	cfg.CacheTTL, err = getEnvAsDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	// Redis is optional; an empty address selects the in-process cache
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a time.Duration
// (e.g. "15m", "1h"). It returns the default value if the variable is not
// set, and an error if it is set but malformed.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}
