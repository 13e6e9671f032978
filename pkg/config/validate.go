package config

import (
	"fmt"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g. "matcher.fuzzy_threshold").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validatePatterns(&cfg.Patterns)...)
	errs = append(errs, validateMatcher(&cfg.Matcher)...)
	errs = append(errs, validateRateLimit(&cfg.RateLimit)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

func validatePatterns(p *PatternsConfig) []FieldError {
	var errs []FieldError

	switch p.Source {
	case "embedded", "file":
	default:
		errs = append(errs, FieldError{
			Field:   "patterns.source",
			Message: fmt.Sprintf("must be \"embedded\" or \"file\", got %q", p.Source),
		})
	}
	if p.Source == "file" && p.FilePath == "" {
		errs = append(errs, FieldError{
			Field:   "patterns.file_path",
			Message: "required when source is \"file\"",
		})
	}
	if p.Watch && p.Source != "file" {
		errs = append(errs, FieldError{
			Field:   "patterns.watch",
			Message: "requires source \"file\"",
		})
	}

	return errs
}

func validateMatcher(m *MatcherConfig) []FieldError {
	var errs []FieldError

	if m.FuzzyThreshold <= 0 || m.FuzzyThreshold > 1 {
		errs = append(errs, FieldError{
			Field:   "matcher.fuzzy_threshold",
			Message: fmt.Sprintf("must be in (0.0, 1.0], got %g", m.FuzzyThreshold),
		})
	}
	if m.TopK < 1 {
		errs = append(errs, FieldError{
			Field:   "matcher.top_k",
			Message: fmt.Sprintf("must be at least 1, got %d", m.TopK),
		})
	}
	if m.MinFuzzyLength < 0 {
		errs = append(errs, FieldError{
			Field:   "matcher.min_fuzzy_length",
			Message: fmt.Sprintf("must not be negative, got %d", m.MinFuzzyLength),
		})
	}
	if m.MaxCompareLength < 1 {
		errs = append(errs, FieldError{
			Field:   "matcher.max_compare_length",
			Message: fmt.Sprintf("must be at least 1, got %d", m.MaxCompareLength),
		})
	}
	if m.CacheSize < 1 {
		errs = append(errs, FieldError{
			Field:   "matcher.cache_size",
			Message: fmt.Sprintf("must be at least 1, got %d", m.CacheSize),
		})
	}

	return errs
}

func validateRateLimit(r *RateLimitConfig) []FieldError {
	var errs []FieldError

	positive := []struct {
		field string
		value int
	}{
		{"rate_limit.requests_per_minute", r.RequestsPerMinute},
		{"rate_limit.requests_per_hour", r.RequestsPerHour},
		{"rate_limit.requests_per_day", r.RequestsPerDay},
		{"rate_limit.burst_size", r.BurstSize},
		{"rate_limit.flagged_block_threshold", r.FlaggedBlockThreshold},
		{"rate_limit.suspicious_block_threshold", r.SuspiciousBlockThreshold},
	}
	for _, p := range positive {
		if p.value < 1 {
			errs = append(errs, FieldError{
				Field:   p.field,
				Message: fmt.Sprintf("must be at least 1, got %d", p.value),
			})
		}
	}

	if r.RequestsPerHour < r.RequestsPerMinute {
		errs = append(errs, FieldError{
			Field:   "rate_limit.requests_per_hour",
			Message: "must not be lower than requests_per_minute",
		})
	}
	if r.RequestsPerDay < r.RequestsPerHour {
		errs = append(errs, FieldError{
			Field:   "rate_limit.requests_per_day",
			Message: "must not be lower than requests_per_hour",
		})
	}

	durations := []struct {
		field string
		value int64
	}{
		{"rate_limit.burst_window", int64(r.BurstWindow)},
		{"rate_limit.cooldown", int64(r.Cooldown)},
		{"rate_limit.flagged_block_duration", int64(r.FlaggedBlockDuration)},
		{"rate_limit.suspicious_block_duration", int64(r.SuspiciousBlockDuration)},
		{"rate_limit.idle_retention", int64(r.IdleRetention)},
		{"rate_limit.sweep_interval", int64(r.SweepInterval)},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, FieldError{
				Field:   d.field,
				Message: "must be a positive duration",
			})
		}
	}

	return errs
}

func validateTelemetry(t *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch t.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", t.Logging.Level),
		})
	}
	switch t.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("must be \"json\" or \"text\", got %q", t.Logging.Format),
		})
	}

	if t.Metrics.Enabled && !strings.HasPrefix(t.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: fmt.Sprintf("must start with \"/\", got %q", t.Metrics.Path),
		})
	}
	for i, b := range t.Metrics.DurationBuckets {
		if i > 0 && b <= t.Metrics.DurationBuckets[i-1] {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.duration_buckets",
				Message: "buckets must be strictly increasing",
			})
			break
		}
	}

	if t.Tracing.Enabled {
		if t.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "required when tracing is enabled",
			})
		}
		if t.Tracing.SampleRatio < 0 || t.Tracing.SampleRatio > 1 {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sample_ratio",
				Message: fmt.Sprintf("must be in [0.0, 1.0], got %g", t.Tracing.SampleRatio),
			})
		}
		if t.Tracing.ServiceName == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.service_name",
				Message: "required when tracing is enabled",
			})
		}
	}

	return errs
}
