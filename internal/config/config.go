package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all seeder and mock backend configuration
type Config struct {
	API     APIConfig
	User    UserConfig
	Log     LogConfig
	MockAPI MockAPIConfig
}

// APIConfig holds the target backend settings
type APIConfig struct {
	BaseURL   string        `env:"SEED_API_URL" envDefault:"http://localhost:8080/api"`
	Timeout   time.Duration `env:"SEED_HTTP_TIMEOUT" envDefault:"30s"`
	RateLimit float64       `env:"SEED_RATE_LIMIT" envDefault:"0"`
}

// UserConfig holds the account registered and used to log in
type UserConfig struct {
	Name     string `env:"SEED_USER_NAME" envDefault:"Admin"`
	Surname  string `env:"SEED_USER_SURNAME" envDefault:"Test"`
	Email    string `env:"SEED_USER_EMAIL" envDefault:"admin@test.com"`
	Password string `env:"SEED_USER_PASSWORD" envDefault:"Password123!"`
	Role     string `env:"SEED_USER_ROLE" envDefault:"ADMIN"`
}

// LogConfig holds structured logging settings
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// MockAPIConfig holds settings for the in-memory mock backend
type MockAPIConfig struct {
	Port             string        `env:"MOCKAPI_PORT" envDefault:"8080"`
	JWTSecret        string        `env:"MOCKAPI_JWT_SECRET" envDefault:"mockapi-dev-secret"`
	TokenField       string        `env:"MOCKAPI_TOKEN_FIELD" envDefault:"token"`
	TokenTTL         time.Duration `env:"MOCKAPI_TOKEN_TTL" envDefault:"24h"`
	AllowRoleRequest bool          `env:"MOCKAPI_ALLOW_ROLE_REQUEST" envDefault:"false"`
	RequireAdmin     bool          `env:"MOCKAPI_REQUIRE_ADMIN" envDefault:"false"`
	// RateLimit is requests per second per client; 0 disables limiting
	RateLimit float64 `env:"MOCKAPI_RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"MOCKAPI_RATE_BURST" envDefault:"5"`
}

// Load reads a .env file when one exists, then parses the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse(nil)
}

// Parse builds a Config from the given environment map. A nil map means the
// process environment.
func Parse(environment map[string]string) (*Config, error) {
	var cfg Config
	opts := env.Options{Environment: environment}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	return &cfg, nil
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("SEED_API_URL is required"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("SEED_API_URL must be an absolute http(s) URL, got '%s'", c.API.BaseURL))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, errors.New("SEED_HTTP_TIMEOUT must not be negative"))
	}
	if c.API.RateLimit < 0 {
		errs = append(errs, errors.New("SEED_RATE_LIMIT must not be negative"))
	}

	if c.User.Email == "" {
		errs = append(errs, errors.New("SEED_USER_EMAIL is required"))
	}
	if c.User.Password == "" {
		errs = append(errs, errors.New("SEED_USER_PASSWORD is required"))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be 'text' or 'json', got '%s'", c.Log.Format))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ValidateMockAPI checks the settings only the mock backend reads
func (c *Config) ValidateMockAPI() error {
	var errs []error

	if c.MockAPI.Port == "" {
		errs = append(errs, errors.New("MOCKAPI_PORT is required"))
	}
	if c.MockAPI.JWTSecret == "" {
		errs = append(errs, errors.New("MOCKAPI_JWT_SECRET is required"))
	}
	if c.MockAPI.TokenField != "token" && c.MockAPI.TokenField != "access_token" {
		errs = append(errs, fmt.Errorf("MOCKAPI_TOKEN_FIELD must be 'token' or 'access_token', got '%s'", c.MockAPI.TokenField))
	}
	if c.MockAPI.TokenTTL <= 0 {
		errs = append(errs, errors.New("MOCKAPI_TOKEN_TTL must be positive"))
	}
	if c.MockAPI.RateLimit < 0 {
		errs = append(errs, errors.New("MOCKAPI_RATE_LIMIT must not be negative"))
	}
	if c.MockAPI.RateLimit > 0 && c.MockAPI.RateBurst < 1 {
		errs = append(errs, errors.New("MOCKAPI_RATE_BURST must be at least 1 when rate limiting"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got '%s'", l.Level)
}

// NewLogger builds the process logger writing to w
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	level, _ := l.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
