// Package config handles client configuration: a JSON file under the data
// directory with environment overrides for deployment-specific values.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
)

// Defaults used when no config file or environment override is present.
const (
	DefaultBackendURL     = "http://localhost:8000"
	DefaultTimeoutSeconds = 30
	DefaultProbeSeconds   = 15
)

// Config represents the flat fieldreport configuration
type Config struct {
	BackendURL            string `json:"backend_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty"`
	ProbeIntervalSeconds  int    `json:"probe_interval_seconds,omitempty"`
}

// RequestTimeout returns the per-request timeout for backend calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ProbeInterval returns the connectivity poll interval.
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.ProbeIntervalSeconds) * time.Second
}

// LoadEnv loads a .env file from the working directory if one exists.
// Missing files are fine; explicit environment variables win either way.
func LoadEnv() {
	_ = godotenv.Load()
}

// LoadConfig reads config.json from the specified directory, falling back to
// defaults when the file is absent, then applies environment overrides
// (FIELDREPORT_BACKEND_URL, FIELDREPORT_TIMEOUT_SECONDS,
// FIELDREPORT_PROBE_SECONDS).
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{
		BackendURL:            DefaultBackendURL,
		RequestTimeoutSeconds: DefaultTimeoutSeconds,
		ProbeIntervalSeconds:  DefaultProbeSeconds,
	}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if url := os.Getenv("FIELDREPORT_BACKEND_URL"); url != "" {
		cfg.BackendURL = url
	}
	if v := os.Getenv("FIELDREPORT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestTimeoutSeconds = n
		}
	}
	if v := os.Getenv("FIELDREPORT_PROBE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ProbeIntervalSeconds = n
		}
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.ProbeIntervalSeconds <= 0 {
		cfg.ProbeIntervalSeconds = DefaultProbeSeconds
	}

	return cfg, nil
}

// SaveConfig writes config.json to the directory. The write is atomic so a
// crash mid-save never leaves a truncated config behind.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DefaultDir returns the data directory holding config, session, and the
// durable queue database.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".fieldreport"), nil
}
