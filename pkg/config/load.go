package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies environment variable overrides. Environment variables follow the
// naming convention TEXTGATE_SECTION_FIELD (e.g. TEXTGATE_PATTERNS_FILE_PATH).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every field set to its default,
// for callers running without a configuration file.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables use the format TEXTGATE_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Pattern overrides
	setString("TEXTGATE_PATTERNS_SOURCE", &cfg.Patterns.Source)
	setString("TEXTGATE_PATTERNS_FILE_PATH", &cfg.Patterns.FilePath)
	setBool("TEXTGATE_PATTERNS_WATCH", &cfg.Patterns.Watch)

	// Matcher overrides
	setFloat("TEXTGATE_MATCHER_FUZZY_THRESHOLD", &cfg.Matcher.FuzzyThreshold)
	setInt("TEXTGATE_MATCHER_TOP_K", &cfg.Matcher.TopK)
	setInt("TEXTGATE_MATCHER_MIN_FUZZY_LENGTH", &cfg.Matcher.MinFuzzyLength)
	setBool("TEXTGATE_MATCHER_ENABLE_FUZZY", &cfg.Matcher.EnableFuzzy)
	setInt("TEXTGATE_MATCHER_MAX_COMPARE_LENGTH", &cfg.Matcher.MaxCompareLength)
	setInt("TEXTGATE_MATCHER_CACHE_SIZE", &cfg.Matcher.CacheSize)

	// Rate limit overrides
	setInt("TEXTGATE_RATE_LIMIT_REQUESTS_PER_MINUTE", &cfg.RateLimit.RequestsPerMinute)
	setInt("TEXTGATE_RATE_LIMIT_REQUESTS_PER_HOUR", &cfg.RateLimit.RequestsPerHour)
	setInt("TEXTGATE_RATE_LIMIT_REQUESTS_PER_DAY", &cfg.RateLimit.RequestsPerDay)
	setInt("TEXTGATE_RATE_LIMIT_BURST_SIZE", &cfg.RateLimit.BurstSize)
	setDuration("TEXTGATE_RATE_LIMIT_BURST_WINDOW", &cfg.RateLimit.BurstWindow)
	setDuration("TEXTGATE_RATE_LIMIT_COOLDOWN", &cfg.RateLimit.Cooldown)
	setInt("TEXTGATE_RATE_LIMIT_FLAGGED_BLOCK_THRESHOLD", &cfg.RateLimit.FlaggedBlockThreshold)
	setDuration("TEXTGATE_RATE_LIMIT_FLAGGED_BLOCK_DURATION", &cfg.RateLimit.FlaggedBlockDuration)
	setInt("TEXTGATE_RATE_LIMIT_SUSPICIOUS_BLOCK_THRESHOLD", &cfg.RateLimit.SuspiciousBlockThreshold)
	setDuration("TEXTGATE_RATE_LIMIT_SUSPICIOUS_BLOCK_DURATION", &cfg.RateLimit.SuspiciousBlockDuration)
	setDuration("TEXTGATE_RATE_LIMIT_IDLE_RETENTION", &cfg.RateLimit.IdleRetention)
	setDuration("TEXTGATE_RATE_LIMIT_SWEEP_INTERVAL", &cfg.RateLimit.SweepInterval)

	// Telemetry overrides
	setString("TEXTGATE_TELEMETRY_LOGGING_LEVEL", &cfg.Telemetry.Logging.Level)
	setString("TEXTGATE_TELEMETRY_LOGGING_FORMAT", &cfg.Telemetry.Logging.Format)
	setBool("TEXTGATE_TELEMETRY_LOGGING_ADD_SOURCE", &cfg.Telemetry.Logging.AddSource)
	setBool("TEXTGATE_TELEMETRY_METRICS_ENABLED", &cfg.Telemetry.Metrics.Enabled)
	setString("TEXTGATE_TELEMETRY_METRICS_PATH", &cfg.Telemetry.Metrics.Path)
	setString("TEXTGATE_TELEMETRY_METRICS_NAMESPACE", &cfg.Telemetry.Metrics.Namespace)
	setBool("TEXTGATE_TELEMETRY_TRACING_ENABLED", &cfg.Telemetry.Tracing.Enabled)
	setFloat("TEXTGATE_TELEMETRY_TRACING_SAMPLE_RATIO", &cfg.Telemetry.Tracing.SampleRatio)
	setString("TEXTGATE_TELEMETRY_TRACING_ENDPOINT", &cfg.Telemetry.Tracing.Endpoint)
	setString("TEXTGATE_TELEMETRY_TRACING_SERVICE_NAME", &cfg.Telemetry.Tracing.ServiceName)
	setBool("TEXTGATE_TELEMETRY_TRACING_INSECURE", &cfg.Telemetry.Tracing.Insecure)
}

func setString(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func setInt(key string, dst *int) {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

func setFloat(key string, dst *float64) {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(key string, dst *bool) {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}

func setDuration(key string, dst *time.Duration) {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}
