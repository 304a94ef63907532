// Package config provides configuration management for the benchmark
// ingestion worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingGistID            = errors.New("source.gist_id is required")
	ErrInvalidPerPage           = errors.New("source.per_page must be between 1 and 100")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingStoragePath       = errors.New("storage.path is required")
	ErrMissingExportPath        = errors.New("export.path is required")
	ErrInvalidMinWatts          = errors.New("quality.min_plausible_watts must be positive")
	ErrInvalidMaxFPSPerWatt     = errors.New("quality.max_fps_per_watt must be positive")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete worker configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Retry   RetryPolicy   `yaml:"retry"`
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	Quality QualityConfig `yaml:"quality"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig identifies the gist whose comments carry the benchmark
// submissions.
type SourceConfig struct {
	GistID  string `yaml:"gist_id"`
	BaseURL string `yaml:"base_url"`
	PerPage int    `yaml:"per_page"`
}

// RetryPolicy defines retry behavior for the fetch client.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// StorageConfig locates the result database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ExportConfig defines the JSON export artifact.
type ExportConfig struct {
	Path        string `yaml:"path"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// QualityConfig holds the data-quality flagging thresholds.
type QualityConfig struct {
	MinPlausibleWatts float64 `yaml:"min_plausible_watts"`
	MaxFPSPerWatt     float64 `yaml:"max_fps_per_watt"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Secrets holds credentials that never live in the YAML file; they are
// read from the environment instead.
type Secrets struct {
	GitHubToken string `envconfig:"GITHUB_TOKEN"`
}

// Default returns a configuration with sane defaults for every field
// except the gist ID, which has no meaningful default.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL: "https://api.github.com",
			PerPage: 100,
		},
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        30,
		},
		Storage: StorageConfig{Path: "benchmarks.db"},
		Export:  ExportConfig{Path: "benchmarks.json", PrettyPrint: true},
		Quality: QualityConfig{
			MinPlausibleWatts: 3.0,
			MaxFPSPerWatt:     400.0,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from a YAML file, layered over the
// defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadSecrets reads credentials from the environment.
func LoadSecrets() (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("failed to read secrets from environment: %w", err)
	}

	return &s, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Source.GistID == "" {
		return ErrMissingGistID
	}

	if c.Source.PerPage < 1 || c.Source.PerPage > 100 {
		return ErrInvalidPerPage
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Storage.Path == "" {
		return ErrMissingStoragePath
	}

	if c.Export.Path == "" {
		return ErrMissingExportPath
	}

	if c.Quality.MinPlausibleWatts <= 0 {
		return ErrInvalidMinWatts
	}

	if c.Quality.MaxFPSPerWatt <= 0 {
		return ErrInvalidMaxFPSPerWatt
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetRetryDelay calculates exponential backoff delay for attempt
// number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the HTTP timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}
