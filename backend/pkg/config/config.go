package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	apperrors "reddit-mcp/backend/pkg/errors"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultSettingsFile = "settings.yaml"
	defaultHost         = "127.0.0.1"
)

// Config holds all application configuration
type Config struct {
	// App
	Host     string
	Port     string
	Env      string
	LogLevel string

	// MCPAuthToken, when set, must be presented as a bearer token on /mcp
	MCPAuthToken string

	// Reddit application credentials
	ClientID       string
	ClientSecret   string
	RedditUsername string
	RedditPassword string
	RedirectURL    string // Redirect URL added during app registration

	// Reddit HTTP client. Empty values fall back to the client's defaults.
	UserAgent          string
	AuthBaseURL        string
	APIBaseURL         string
	RequestsPerMinute  float64
	RateLimitBurst     int
	HTTPTimeoutSeconds int
}

// settings is the shape of the optional YAML settings file. Secrets are
// only read from the environment.
type settings struct {
	Env                string  `yaml:"env"`
	Host               string  `yaml:"host"`
	Port               string  `yaml:"port"`
	LogLevel           string  `yaml:"log_level"`
	UserAgent          string  `yaml:"user_agent"`
	AuthBaseURL        string  `yaml:"auth_base_url"`
	APIBaseURL         string  `yaml:"api_base_url"`
	RequestsPerMinute  float64 `yaml:"requests_per_minute"`
	RateLimitBurst     int     `yaml:"rate_limit_burst"`
	HTTPTimeoutSeconds int     `yaml:"http_timeout_seconds"`
}

// Load reads configuration from the optional settings file and environment
// variables. Environment variables win over the settings file.
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Host: defaultHost,
		Port: "8080",
		Env:  "development",
	}

	if err := cfg.loadSettings(getEnv("REDDIT_MCP_SETTINGS", defaultSettingsFile)); err != nil {
		return nil, err
	}

	cfg.Host = getEnv("HOST", cfg.Host)
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.MCPAuthToken = getEnv("MCP_AUTH_TOKEN", "")
	cfg.ClientID = getEnv("CLIENT_ID", "")
	cfg.ClientSecret = getEnv("CLIENT_SECRET", "")
	cfg.RedditUsername = getEnv("REDDIT_USERNAME", "")
	cfg.RedditPassword = getEnv("REDDIT_PASSWORD", "")
	cfg.RedirectURL = getEnv("REDIRECT_URL", "")
	cfg.UserAgent = getEnv("REDDIT_USER_AGENT", cfg.UserAgent)
	cfg.AuthBaseURL = getEnv("REDDIT_AUTH_BASE_URL", cfg.AuthBaseURL)
	cfg.APIBaseURL = getEnv("REDDIT_API_BASE_URL", cfg.APIBaseURL)
	cfg.RequestsPerMinute = getEnvFloat("REDDIT_REQUESTS_PER_MINUTE", cfg.RequestsPerMinute)
	cfg.RateLimitBurst = getEnvInt("REDDIT_RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.HTTPTimeoutSeconds = getEnvInt("REDDIT_HTTP_TIMEOUT_SECONDS", cfg.HTTPTimeoutSeconds)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if s.Env != "" {
		c.Env = s.Env
	}
	if s.Host != "" {
		c.Host = s.Host
	}
	if s.Port != "" {
		c.Port = s.Port
	}
	if s.LogLevel != "" {
		c.LogLevel = s.LogLevel
	}
	if s.UserAgent != "" {
		c.UserAgent = s.UserAgent
	}
	if s.AuthBaseURL != "" {
		c.AuthBaseURL = s.AuthBaseURL
	}
	if s.APIBaseURL != "" {
		c.APIBaseURL = s.APIBaseURL
	}
	if s.RequestsPerMinute != 0 {
		c.RequestsPerMinute = s.RequestsPerMinute
	}
	if s.RateLimitBurst != 0 {
		c.RateLimitBurst = s.RateLimitBurst
	}
	if s.HTTPTimeoutSeconds != 0 {
		c.HTTPTimeoutSeconds = s.HTTPTimeoutSeconds
	}
	return nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"CLIENT_ID", c.ClientID},
		{"CLIENT_SECRET", c.ClientSecret},
		{"REDDIT_USERNAME", c.RedditUsername},
		{"REDDIT_PASSWORD", c.RedditPassword},
		{"REDIRECT_URL", c.RedirectURL},
	}
	for _, r := range required {
		if r.value == "" {
			return apperrors.NewConfigMissingRequired(r.field)
		}
	}

	// Zero rate settings select the client defaults; negative ones are mistakes.
	if c.RequestsPerMinute < 0 {
		return apperrors.NewConfigValidationFailed("REDDIT_REQUESTS_PER_MINUTE", "must not be negative")
	}
	if c.RateLimitBurst < 0 {
		return apperrors.NewConfigValidationFailed("REDDIT_RATE_LIMIT_BURST", "must not be negative")
	}
	if c.HTTPTimeoutSeconds < 0 {
		return apperrors.NewConfigValidationFailed("REDDIT_HTTP_TIMEOUT_SECONDS", "must not be negative")
	}
	return nil
}

// HTTPTimeout returns the outbound request timeout; zero means none
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		var result float64
		if _, err := fmt.Sscanf(value, "%f", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
