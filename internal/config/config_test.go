package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir()) // no user config file
	t.Setenv("PPALOG_API_URL", "")
	t.Setenv("PPALOG_TIMEOUT", "")
	t.Setenv("PPALOG_TOKEN_PATH", "")
	t.Setenv("PPALOG_LOG_LEVEL", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:5000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.TokenPath == "" {
		t.Error("TokenPath should default under the home directory")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PPALOG_API_URL", "https://api.example.com/v1")
	t.Setenv("PPALOG_TIMEOUT", "30s")
	t.Setenv("PPALOG_TOKEN_PATH", "/tmp/ppalog-token")
	t.Setenv("PPALOG_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.APIBaseURL != "https://api.example.com/v1" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.TokenPath != "/tmp/ppalog-token" {
		t.Errorf("TokenPath = %q", cfg.TokenPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoad_MalformedTimeoutIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PPALOG_TIMEOUT", "soon")

	cfg := Load()
	if cfg.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want the default", cfg.RequestTimeout)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo, // unknown falls back to info
	}
	for level, want := range cases {
		cfg := &Config{LogLevel: level}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", level, got, want)
		}
	}
}
