package config

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_InvalidPortFallsBackToDefault verifies that any out-of-range
// server port falls back to the default, keeping the service operational.
func TestProperty_InvalidPortFallsBackToDefault(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("non-positive ports fall back to default", prop.ForAll(
		func(port int) bool {
			cfg := &Config{}
			cfg.Server.Port = port

			validateAndApplyDefaults(cfg)

			return cfg.Server.Port == 8080
		},
		gen.IntRange(-1000, 0),
	))

	properties.Property("ports above 65535 fall back to default", prop.ForAll(
		func(port int) bool {
			cfg := &Config{}
			cfg.Server.Port = port

			validateAndApplyDefaults(cfg)

			return cfg.Server.Port == 8080
		},
		gen.IntRange(65536, 200000),
	))

	properties.Property("valid ports are preserved", prop.ForAll(
		func(port int) bool {
			cfg := &Config{}
			cfg.Server.Port = port

			validateAndApplyDefaults(cfg)

			return cfg.Server.Port == port
		},
		gen.IntRange(1, 65535),
	))

	properties.TestingRun(t)
}

// TestProperty_InvalidQueueSettingsFallBackToDefaults verifies queue
// defaults for non-positive concurrency and timeout values.
func TestProperty_InvalidQueueSettingsFallBackToDefaults(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("non-positive concurrency falls back to default", prop.ForAll(
		func(n int) bool {
			cfg := &Config{}
			cfg.Queue.Concurrency = n

			validateAndApplyDefaults(cfg)

			return cfg.Queue.Concurrency == 5
		},
		gen.IntRange(-100, 0),
	))

	properties.Property("non-positive task timeout falls back to default", prop.ForAll(
		func(n int) bool {
			cfg := &Config{}
			cfg.Queue.TaskTimeout = n

			validateAndApplyDefaults(cfg)

			return cfg.Queue.TaskTimeout == 30
		},
		gen.IntRange(-100, 0),
	))

	properties.TestingRun(t)
}

func TestDefaultsOnEmptyConfig(t *testing.T) {
	cfg := &Config{}
	validateAndApplyDefaults(cfg)

	if cfg.Server.Mode != "release" {
		t.Fatalf("expected release mode, got %q", cfg.Server.Mode)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Output != "console" {
		t.Fatalf("unexpected logger defaults: %+v", cfg.Logger)
	}
	if cfg.Queue.MaxRetry != 0 {
		t.Fatalf("zero max retry should be preserved, got %d", cfg.Queue.MaxRetry)
	}
}
