package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "WQ_TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "WQ_TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal time.Duration
		expected   time.Duration
	}{
		{"parses duration", "WQ_TEST_DUR_1", "90s", time.Second, 90 * time.Second},
		{"uses default for empty", "WQ_TEST_DUR_2", "", time.Second, time.Second},
		{"uses default for garbage", "WQ_TEST_DUR_3", "soon", time.Second, time.Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				t.Setenv(tc.key, tc.envValue)
			}

			result := getEnvAsDurationOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsBoolOrDefault(t *testing.T) {
	t.Setenv("WQ_TEST_BOOL_1", "true")
	t.Setenv("WQ_TEST_BOOL_2", "nope")

	if !getEnvAsBoolOrDefault("WQ_TEST_BOOL_1", false) {
		t.Error("expected true from env")
	}
	if getEnvAsBoolOrDefault("WQ_TEST_BOOL_2", false) {
		t.Error("expected default for unparsable value")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "QUIZ_API_URL", "QUIZ_API_TIMEOUT", "SESSION_SECRET", "DATABASE_URL", "REDIS_URL", "SESSION_MAX_LENGTH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.QuizAPIURL != "http://127.0.0.1:8000" {
		t.Errorf("QuizAPIURL = %q", cfg.QuizAPIURL)
	}
	if cfg.QuizAPITimeout != 60*time.Second {
		t.Errorf("QuizAPITimeout = %s", cfg.QuizAPITimeout)
	}
	if cfg.PreviewCacheTTL != 10*time.Minute {
		t.Errorf("PreviewCacheTTL = %s", cfg.PreviewCacheTTL)
	}
	if cfg.SessionMaxLength != DefaultSessionMaxLength {
		t.Errorf("SessionMaxLength = %d, want %d", cfg.SessionMaxLength, DefaultSessionMaxLength)
	}
}

func TestLoadTrimsTrailingSlash(t *testing.T) {
	t.Setenv("QUIZ_API_URL", "https://quiz.example.com/")

	cfg := Load()
	if cfg.QuizAPIURL != "https://quiz.example.com" {
		t.Errorf("QuizAPIURL = %q, want trailing slash trimmed", cfg.QuizAPIURL)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:             "8080",
			Env:              "development",
			QuizAPIURL:       "http://127.0.0.1:8000",
			QuizAPITimeout:   time.Second,
			SessionMaxAge:    60,
			SessionMaxLength: 4096,
		}
	}

	t.Run("development fills secret", func(t *testing.T) {
		cfg := valid()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SessionSecret == "" {
			t.Fatal("expected development secret to be filled in")
		}
	})

	t.Run("production requires secret", func(t *testing.T) {
		cfg := valid()
		cfg.Env = "production"
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing secret in production")
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative api url", func(c *Config) { c.QuizAPIURL = "/api" }},
		{"zero timeout", func(c *Config) { c.QuizAPITimeout = 0 }},
		{"negative max age", func(c *Config) { c.SessionMaxAge = -1 }},
		{"zero session max length", func(c *Config) { c.SessionMaxLength = 0 }},
		{"bad port", func(c *Config) { c.Port = "http" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
