package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidBounds   = errors.New("min_length must be at least 1 and not greater than max_length")
	ErrInvalidDefault  = errors.New("default_length must be within [min_length, max_length]")
	ErrInvalidHistory  = errors.New("history_size must be positive")
	ErrInvalidSource   = errors.New(`random_source must be "math" or "crypto"`)
	ErrInvalidRateRule = errors.New("rate limit rps and burst must be positive")
)

type Config struct {
	Port     string `yaml:"port"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`

	DefaultLength   int    `yaml:"default_length"`
	MinLength       int    `yaml:"min_length"`
	MaxLength       int    `yaml:"max_length"`
	DefaultSpecials bool   `yaml:"default_specials"`
	RandomSource    string `yaml:"random_source"`
	HistorySize     int    `yaml:"history_size"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:            "8080",
		Env:             "development",
		LogLevel:        "info",
		DefaultLength:   12,
		MinLength:       8,
		MaxLength:       30,
		DefaultSpecials: true,
		RandomSource:    "math",
		HistorySize:     50,
		RateLimitRPS:    10,
		RateLimitBurst:  20,
	}
}

// Load builds the configuration from defaults, the optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RandomSource = getEnv("RANDOM_SOURCE", cfg.RandomSource)

	var err error
	if cfg.DefaultLength, err = getEnvInt("DEFAULT_LENGTH", cfg.DefaultLength); err != nil {
		return Config{}, err
	}
	if cfg.MinLength, err = getEnvInt("MIN_LENGTH", cfg.MinLength); err != nil {
		return Config{}, err
	}
	if cfg.MaxLength, err = getEnvInt("MAX_LENGTH", cfg.MaxLength); err != nil {
		return Config{}, err
	}
	if cfg.HistorySize, err = getEnvInt("HISTORY_SIZE", cfg.HistorySize); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return Config{}, err
	}
	if cfg.DefaultSpecials, err = getEnvBool("DEFAULT_SPECIALS", cfg.DefaultSpecials); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.MinLength < 1 || c.MinLength > c.MaxLength {
		return ErrInvalidBounds
	}
	if c.DefaultLength < c.MinLength || c.DefaultLength > c.MaxLength {
		return ErrInvalidDefault
	}
	if c.HistorySize <= 0 {
		return ErrInvalidHistory
	}
	if c.RandomSource != "math" && c.RandomSource != "crypto" {
		return ErrInvalidSource
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return ErrInvalidRateRule
	}
	return nil
}

// NewLogger returns a slog logger for the configured environment: JSON in
// production, text elsewhere.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	if c.Env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
