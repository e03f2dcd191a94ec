package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// devSessionSecret is only accepted outside production.
const devSessionSecret = "wikiquiz-development-session-secret"

// DefaultSessionMaxLength is the encoded session size limit when SESSION_MAX_LENGTH is unset.
const DefaultSessionMaxLength = 1 << 20

type Config struct {
	// Server
	Port string
	Env  string

	// Quiz backend
	QuizAPIURL     string
	QuizAPITimeout time.Duration

	// Sessions
	SessionSecret    string
	SessionMaxAge    int
	SessionSecure    bool
	SessionMaxLength int // encoded size limit for sessions kept in Postgres

	// Postgres session store (optional)
	DatabaseURL string

	// Redis preview cache (optional)
	RedisURL        string
	PreviewCacheTTL time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		Env:              getEnvOrDefault("ENV", "development"),
		QuizAPIURL:       strings.TrimSuffix(getEnvOrDefault("QUIZ_API_URL", "http://127.0.0.1:8000"), "/"),
		QuizAPITimeout:   getEnvAsDurationOrDefault("QUIZ_API_TIMEOUT", 60*time.Second),
		SessionSecret:    getEnvOrDefault("SESSION_SECRET", ""),
		SessionMaxAge:    getEnvAsIntOrDefault("SESSION_MAX_AGE", 86400*7),
		SessionSecure:    getEnvAsBoolOrDefault("SESSION_SECURE", false),
		SessionMaxLength: getEnvAsIntOrDefault("SESSION_MAX_LENGTH", DefaultSessionMaxLength),
		DatabaseURL:      getEnvOrDefault("DATABASE_URL", ""),
		RedisURL:         getEnvOrDefault("REDIS_URL", ""),
		PreviewCacheTTL:  getEnvAsDurationOrDefault("PREVIEW_CACHE_TTL", 10*time.Minute),
	}
}

// IsProduction reports whether ENV names a production deployment
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Env)
	return env == "prod" || env == "production"
}

// Validate checks the loaded values and fills in the development session secret when allowed.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return errors.New("SESSION_SECRET must be set in production")
		}
		c.SessionSecret = devSessionSecret
	}
	u, err := url.Parse(c.QuizAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("QUIZ_API_URL %q is not an absolute URL", c.QuizAPIURL)
	}
	if c.QuizAPITimeout <= 0 {
		return fmt.Errorf("QUIZ_API_TIMEOUT must be positive, got %s", c.QuizAPITimeout)
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive, got %d", c.SessionMaxAge)
	}
	if c.SessionMaxLength <= 0 {
		return fmt.Errorf("SESSION_MAX_LENGTH must be positive, got %d", c.SessionMaxLength)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT %q is not a number", c.Port)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
