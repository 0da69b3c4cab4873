package config

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestDefaultValues(t *testing.T) {
	c := Default()
	if c.FixpointBudget != 10000 || c.DispatchQueue != 4096 || !c.MetricsEnabled || c.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestNewAppliesOptionsOverDefaults(t *testing.T) {
	c := New(WithFixpointBudget(500), WithLogLevel("debug"))
	if c.FixpointBudget != 500 || c.LogLevel != "debug" {
		t.Fatalf("options not applied: %+v", c)
	}
	if c.DispatchQueue != 4096 {
		t.Fatalf("unrelated default clobbered: %+v", c)
	}
}

func TestLoadFromEnvOverridesAndIgnoresInvalid(t *testing.T) {
	t.Setenv(EnvFixpointBudget, "250")
	t.Setenv(EnvMetricsEnabled, "false")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvDispatchQueue, "not-a-number")

	c := Default()
	c.LoadFromEnv()

	if c.FixpointBudget != 250 {
		t.Fatalf("FixpointBudget = %d, want 250", c.FixpointBudget)
	}
	if c.MetricsEnabled {
		t.Fatalf("MetricsEnabled should be false")
	}
	if c.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", c.LogLevel)
	}
	if c.DispatchQueue != 4096 {
		t.Fatalf("invalid env var should not override default, got %d", c.DispatchQueue)
	}
}

func TestLoadParsesYAMLFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "loom-*.yaml")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	_, _ = f.WriteString("fixpoint_budget: 42\nlog_level: debug\n")
	f.Close()

	c, err := Load(f.Name())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FixpointBudget != 42 || c.LogLevel != "debug" {
		t.Fatalf("Load did not parse YAML: %+v", c)
	}
}

func TestMarshalRoundTrips(t *testing.T) {
	c := New(WithFixpointBudget(99))
	b, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("Marshal produced empty output")
	}
	var back Config
	if err := yaml.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != *c {
		t.Fatalf("round trip = %+v, want %+v", back, *c)
	}
}
