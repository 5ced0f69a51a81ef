package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps validation failures from Load and Validate.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// Config is the application's configuration model.
// It captures how mentions are recognized, how rankings are reported, and the ambient logging and metrics setup.
type Config struct {
	Mentions MentionsConfig `yaml:"mentions"`
	Ranking  RankingConfig  `yaml:"ranking"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type MentionsConfig struct {
	// Accept non-ASCII letters and digits in handles. Default is ASCII [A-Za-z0-9_].
	UnicodeHandles bool `yaml:"unicodeHandles"`
}

type RankingConfig struct {
	// Number of influencers to report; 0 reports everyone.
	Top int `yaml:"top" validate:"gte=0"`
}

type LoggingConfig struct {
	// "json" or "text". If empty, read from env FOLLOWGRAPH_LOG_FORMAT
	Format string `yaml:"format" validate:"omitempty,oneof=json text"`
	// debug, info, warn or error. If empty, read from env FOLLOWGRAPH_LOG_LEVEL
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type MetricsConfig struct {
	// Listen address for /metrics, e.g. ":9090". If empty, read from env METRICS_ADDR
	Addr string `yaml:"addr"`
}

// Default returns a sensible default configuration.
// Logging fields are left empty so the environment, then text/info, decide.
func Default() Config {
	return Config{
		Mentions: MentionsConfig{UnicodeHandles: false},
		Ranking:  RankingConfig{Top: 0},
		Logging:  LoggingConfig{},
		Metrics:  MetricsConfig{Addr: ""},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
func (c *Config) ResolveEnv() {
	if c.Logging.Format == "" {
		c.Logging.Format = os.Getenv("FOLLOWGRAPH_LOG_FORMAT")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = os.Getenv("FOLLOWGRAPH_LOG_LEVEL")
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = os.Getenv("METRICS_ADDR")
	}
	if v := os.Getenv("FOLLOWGRAPH_UNICODE_HANDLES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Mentions.UnicodeHandles = b
		}
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Load reads YAML config from path on fs, applies env overrides and validates the result.
func Load(fs afero.Fs, path string) (Config, error) {
	var cfg Config
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.ResolveEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed.
func Save(fs afero.Fs, path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, b, 0o644)
}
