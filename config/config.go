// Package config loads loom's runtime configuration from YAML (via
// github.com/goccy/go-yaml, the same library the devtools formats use for
// structured export) with environment-variable overrides and a functional
// options pattern for programmatic construction.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Environment variable names, all overriding their YAML counterpart.
const (
	EnvFixpointBudget = "LOOM_FIXPOINT_BUDGET"
	EnvDispatchQueue  = "LOOM_DISPATCH_QUEUE_SIZE"
	EnvSentryDSN      = "LOOM_SENTRY_DSN"
	EnvMetricsEnabled = "LOOM_METRICS_ENABLED"
	EnvLogLevel       = "LOOM_LOG_LEVEL"
)

// Config is the top-level runtime configuration: scheduler budget, async
// dispatch queue sizing, and the ambient-stack knobs (Sentry DSN, metrics
// toggle, log level). It is a plain value: no loom package reads a Config,
// so a host passes its fields on itself (for example FixpointBudget to
// reactive.SetFixpointBudget). The async dispatch queue's capacity is fixed
// at 4096 and DispatchQueue does not change it.
type Config struct {
	FixpointBudget int    `yaml:"fixpoint_budget"`
	DispatchQueue  int    `yaml:"dispatch_queue_size"`
	SentryDSN      string `yaml:"sentry_dsn"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	LogLevel       string `yaml:"log_level"`
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithFixpointBudget sets FixpointBudget, the per-tick effect-rerun budget.
func WithFixpointBudget(n int) Option { return func(c *Config) { c.FixpointBudget = n } }

// WithDispatchQueueSize sets DispatchQueue, the dispatch queue capacity
// setting.
func WithDispatchQueueSize(n int) Option { return func(c *Config) { c.DispatchQueue = n } }

// WithSentryDSN sets SentryDSN, the DSN for observability.NewSentryReporter.
func WithSentryDSN(dsn string) Option { return func(c *Config) { c.SentryDSN = dsn } }

// WithMetricsEnabled sets MetricsEnabled, the metrics toggle.
func WithMetricsEnabled(enabled bool) Option { return func(c *Config) { c.MetricsEnabled = enabled } }

// WithLogLevel sets LogLevel, the minimum log severity name.
func WithLogLevel(level string) Option { return func(c *Config) { c.LogLevel = level } }

// Default returns the baseline configuration every loader starts from.
func Default() *Config {
	return &Config{
		FixpointBudget: 10000,
		DispatchQueue:  4096,
		MetricsEnabled: true,
		LogLevel:       "info",
	}
}

// New builds a Config from defaults with opts applied, in order.
func New(opts ...Option) *Config {
	cfg := Default()
	Apply(cfg, opts...)
	return cfg
}

// Apply mutates cfg in place with each option, in order.
func Apply(cfg *Config, opts ...Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// Load reads a YAML document from path into a Config seeded with Default(),
// then applies environment overrides on top.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.LoadFromEnv()
	return cfg, nil
}

// LoadFromEnv overlays any set LOOM_* environment variables onto cfg.
// Invalid values are ignored so a bad environment never prevents startup.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvFixpointBudget); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.FixpointBudget = n
		}
	}
	if v := os.Getenv(EnvDispatchQueue); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.DispatchQueue = n
		}
	}
	if v := os.Getenv(EnvSentryDSN); v != "" {
		c.SentryDSN = v
	}
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.MetricsEnabled = b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Marshal serializes cfg back to YAML, mainly for devtools export.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
