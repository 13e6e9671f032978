package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Default()

	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Matcher.FuzzyThreshold = 2.0
	cfg.Matcher.TopK = 0
	cfg.RateLimit.RequestsPerMinute = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	verr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
	if !strings.Contains(verr.Error(), "3 errors") {
		t.Errorf("unexpected message: %q", verr.Error())
	}
}

func TestValidate_Patterns(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown source",
			mutate:    func(c *Config) { c.Patterns.Source = "s3" },
			wantField: "patterns.source",
		},
		{
			name: "file source without path",
			mutate: func(c *Config) {
				c.Patterns.Source = "file"
				c.Patterns.FilePath = ""
			},
			wantField: "patterns.file_path",
		},
		{
			name:      "watch without file source",
			mutate:    func(c *Config) { c.Patterns.Watch = true },
			wantField: "patterns.watch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error on %q, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidate_Matcher(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "threshold zero",
			mutate:    func(c *Config) { c.Matcher.FuzzyThreshold = 0 },
			wantField: "matcher.fuzzy_threshold",
		},
		{
			name:      "threshold above one",
			mutate:    func(c *Config) { c.Matcher.FuzzyThreshold = 1.01 },
			wantField: "matcher.fuzzy_threshold",
		},
		{
			name:      "negative min fuzzy length",
			mutate:    func(c *Config) { c.Matcher.MinFuzzyLength = -1 },
			wantField: "matcher.min_fuzzy_length",
		},
		{
			name:      "zero compare length",
			mutate:    func(c *Config) { c.Matcher.MaxCompareLength = 0 },
			wantField: "matcher.max_compare_length",
		},
		{
			name:      "zero cache size",
			mutate:    func(c *Config) { c.Matcher.CacheSize = 0 },
			wantField: "matcher.cache_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error on %q, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidate_RateLimit(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "hour below minute",
			mutate:    func(c *Config) { c.RateLimit.RequestsPerHour = 10 },
			wantField: "rate_limit.requests_per_hour",
		},
		{
			name:      "day below hour",
			mutate:    func(c *Config) { c.RateLimit.RequestsPerDay = 100 },
			wantField: "rate_limit.requests_per_day",
		},
		{
			name:      "negative cooldown",
			mutate:    func(c *Config) { c.RateLimit.Cooldown = -time.Second },
			wantField: "rate_limit.cooldown",
		},
		{
			name:      "zero burst size",
			mutate:    func(c *Config) { c.RateLimit.BurstSize = 0 },
			wantField: "rate_limit.burst_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error on %q, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidate_Telemetry(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "bad level",
			mutate:    func(c *Config) { c.Telemetry.Logging.Level = "verbose" },
			wantField: "telemetry.logging.level",
		},
		{
			name:      "bad format",
			mutate:    func(c *Config) { c.Telemetry.Logging.Format = "xml" },
			wantField: "telemetry.logging.format",
		},
		{
			name:      "metrics path without slash",
			mutate:    func(c *Config) { c.Telemetry.Metrics.Path = "metrics" },
			wantField: "telemetry.metrics.path",
		},
		{
			name:      "non-increasing buckets",
			mutate:    func(c *Config) { c.Telemetry.Metrics.DurationBuckets = []float64{0.1, 0.1} },
			wantField: "telemetry.metrics.duration_buckets",
		},
		{
			name:      "tracing without endpoint",
			mutate:    func(c *Config) { c.Telemetry.Tracing.Enabled = true },
			wantField: "telemetry.tracing.endpoint",
		},
		{
			name: "tracing ratio out of range",
			mutate: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Endpoint = "localhost:4317"
				c.Telemetry.Tracing.SampleRatio = 1.5
			},
			wantField: "telemetry.tracing.sample_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error on %q, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	single := ValidationError{Errors: []FieldError{{Field: "a.b", Message: "bad"}}}
	if got := single.Error(); got != "configuration validation failed: a.b: bad" {
		t.Errorf("unexpected single-error message: %q", got)
	}

	empty := ValidationError{}
	if got := empty.Error(); got != "configuration validation failed" {
		t.Errorf("unexpected empty message: %q", got)
	}
}
