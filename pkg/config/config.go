package config

import "time"

// Config is the root configuration structure for textgate. It contains
// all configuration sections for the pattern library, the tiered
// matcher, the rate limiter, and telemetry.
type Config struct {
	// Patterns contains configuration for the pattern library: where the
	// category tables come from and whether to hot-reload them.
	Patterns PatternsConfig `yaml:"patterns"`

	// Matcher contains configuration for the tiered matcher, including
	// the fuzzy tier's threshold and cache sizing.
	Matcher MatcherConfig `yaml:"matcher"`

	// RateLimit contains configuration for per-client rate limiting and
	// abuse escalation.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Telemetry contains configuration for observability including
	// logging, metrics, and distributed tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// PatternsConfig contains configuration for the pattern library.
type PatternsConfig struct {
	// Source specifies where pattern tables are loaded from.
	// Options: "embedded" (built-in tables), "file" (local YAML file)
	// Default: "embedded"
	Source string `yaml:"source"`

	// FilePath is the path to the pattern file when Source is "file".
	// Default: "./patterns.yaml"
	FilePath string `yaml:"file_path"`

	// Watch enables automatic reloading when the pattern file changes.
	// Only meaningful when Source is "file".
	// Default: false
	Watch bool `yaml:"watch"`
}

// MatcherConfig contains configuration for the tiered matcher.
type MatcherConfig struct {
	// FuzzyThreshold is the minimum similarity score for a fuzzy match
	// (0.0 to 1.0). Higher values require closer matches.
	// Default: 0.8
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`

	// TopK is the maximum number of fuzzy matches reported per category.
	// Default: 3
	TopK int `yaml:"top_k"`

	// MinFuzzyLength is the minimum input length (in runes) for the
	// fuzzy tier to run. Short inputs produce too many spurious matches.
	// Default: 10
	MinFuzzyLength int `yaml:"min_fuzzy_length"`

	// EnableFuzzy controls whether the fuzzy tier runs at all. Disabling
	// it under load reduces recall but never correctness.
	// Default: true
	EnableFuzzy bool `yaml:"enable_fuzzy"`

	// MaxCompareLength truncates inputs (in runes) before fuzzy
	// comparison to bound per-request cost.
	// Default: 1000
	MaxCompareLength int `yaml:"max_compare_length"`

	// CacheSize is the capacity of the similarity score cache.
	// Default: 1024
	CacheSize int `yaml:"cache_size"`
}

// RateLimitConfig contains configuration for per-client rate limiting.
type RateLimitConfig struct {
	// RequestsPerMinute is the 60-second sliding window ceiling.
	// Default: 60
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerHour is the 3600-second sliding window ceiling.
	// Default: 1000
	RequestsPerHour int `yaml:"requests_per_hour"`

	// RequestsPerDay is the 86400-second sliding window ceiling.
	// Default: 10000
	RequestsPerDay int `yaml:"requests_per_day"`

	// BurstSize is the number of most recent requests examined for burst
	// detection.
	// Default: 10
	BurstSize int `yaml:"burst_size"`

	// BurstWindow is the span within which BurstSize requests count as a
	// burst.
	// Default: 5s
	BurstWindow time.Duration `yaml:"burst_window"`

	// Cooldown is the rejection period applied after a limit violation.
	// Default: 5m
	Cooldown time.Duration `yaml:"cooldown"`

	// FlaggedBlockThreshold is the cumulative flagged-content count
	// beyond which a client is auto-blocked.
	// Default: 50
	FlaggedBlockThreshold int `yaml:"flagged_block_threshold"`

	// FlaggedBlockDuration is the block applied for flagged content.
	// Default: 24h
	FlaggedBlockDuration time.Duration `yaml:"flagged_block_duration"`

	// SuspiciousBlockThreshold is the cumulative suspicious-pattern
	// count beyond which a client is auto-blocked.
	// Default: 20
	SuspiciousBlockThreshold int `yaml:"suspicious_block_threshold"`

	// SuspiciousBlockDuration is the block applied for suspicious
	// patterns.
	// Default: 1h
	SuspiciousBlockDuration time.Duration `yaml:"suspicious_block_duration"`

	// IdleRetention is how long an inactive client's state is kept
	// before the idle sweeper may evict it.
	// Default: 24h
	IdleRetention time.Duration `yaml:"idle_retention"`

	// SweepInterval is how often the idle sweeper runs.
	// Default: 1m
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains metrics collection configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "textgate"
	Namespace string `yaml:"namespace"`

	// DurationBuckets defines histogram buckets for pipeline stage
	// durations (seconds).
	// Default: [0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5]
	DurationBuckets []float64 `yaml:"duration_buckets"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Example: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name attached to spans.
	// Default: "textgate"
	ServiceName string `yaml:"service_name"`

	// Insecure disables TLS for the OTLP connection.
	// Default: true
	Insecure bool `yaml:"insecure"`

	// Timeout is the timeout for OTLP exports.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
