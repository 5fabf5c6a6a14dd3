package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigDir is the directory for user-level config and the
	// stored credential, under the home directory.
	userConfigDir  = ".config/ppalog"
	userConfigFile = "config.yaml"
	tokenFile      = "token"

	defaultBaseURL = "http://localhost:5000/api"
	defaultTimeout = 15 * time.Second
)

type Config struct {
	// APIBaseURL is where the dashboard backend lives, including any
	// path prefix.
	APIBaseURL string `yaml:"api_base_url"`

	// RequestTimeout bounds every backend round-trip.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// TokenPath is where the bearer token is persisted between runs.
	TokenPath string `yaml:"token_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Load builds the effective configuration: defaults, then the user
// config file when present, then environment variables. A .env file in
// the working directory is honored before the environment is read.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		APIBaseURL:     defaultBaseURL,
		RequestTimeout: defaultTimeout,
		TokenPath:      filepath.Join(homeDir(), userConfigDir, tokenFile),
		LogLevel:       "info",
	}

	path := filepath.Join(homeDir(), userConfigDir, userConfigFile)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			slog.Warn("ignoring malformed config file", slog.String("path", path), slog.String("error", err.Error()))
		}
	}

	if v := os.Getenv("PPALOG_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("PPALOG_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("PPALOG_TOKEN_PATH"); v != "" {
		cfg.TokenPath = v
	}
	if v := os.Getenv("PPALOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// SlogLevel maps the configured level onto slog's scale.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
