package config

import "time"

// Default values for configuration fields.
const (
	// Pattern defaults
	DefaultPatternSource   = "embedded"
	DefaultPatternFilePath = "./patterns.yaml"
	DefaultPatternWatch    = false

	// Matcher defaults
	DefaultFuzzyThreshold   = 0.8
	DefaultTopK             = 3
	DefaultMinFuzzyLength   = 10
	DefaultEnableFuzzy      = true
	DefaultMaxCompareLength = 1000
	DefaultCacheSize        = 1024

	// Rate limit defaults
	DefaultRequestsPerMinute        = 60
	DefaultRequestsPerHour          = 1000
	DefaultRequestsPerDay           = 10000
	DefaultBurstSize                = 10
	DefaultBurstWindow              = 5 * time.Second
	DefaultCooldown                 = 5 * time.Minute
	DefaultFlaggedBlockThreshold    = 50
	DefaultFlaggedBlockDuration     = 24 * time.Hour
	DefaultSuspiciousBlockThreshold = 20
	DefaultSuspiciousBlockDuration  = time.Hour
	DefaultIdleRetention            = 24 * time.Hour
	DefaultSweepInterval            = time.Minute

	// Telemetry defaults
	DefaultLoggingLevel     = "info"
	DefaultLoggingFormat    = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "textgate"
	DefaultTracingEnabled   = false
	DefaultSampleRatio      = 0.1
	DefaultServiceName      = "textgate"
	DefaultTracingInsecure  = true
	DefaultTracingTimeout   = 10 * time.Second
)

// DefaultDurationBuckets are the histogram buckets for pipeline stage
// durations, in seconds. The pipeline is in-memory and fast, so the
// buckets skew toward sub-millisecond resolution.
func DefaultDurationBuckets() []float64 {
	return []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	applyPatternDefaults(&cfg.Patterns)
	applyMatcherDefaults(&cfg.Matcher)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyPatternDefaults(p *PatternsConfig) {
	if p.Source == "" {
		p.Source = DefaultPatternSource
	}
	if p.FilePath == "" {
		p.FilePath = DefaultPatternFilePath
	}
	// Watch defaults to false (zero value), which is correct.
}

// applyMatcherDefaults applies default values to matcher configuration.
// EnableFuzzy defaults to true, which the boolean zero value cannot
// express: an entirely unset matcher section gets the default, a section
// with any field set is taken at face value.
func applyMatcherDefaults(m *MatcherConfig) {
	unset := m.FuzzyThreshold == 0 &&
		m.TopK == 0 &&
		m.MinFuzzyLength == 0 &&
		m.MaxCompareLength == 0 &&
		m.CacheSize == 0 &&
		!m.EnableFuzzy

	if m.FuzzyThreshold == 0 {
		m.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if m.TopK == 0 {
		m.TopK = DefaultTopK
	}
	if m.MinFuzzyLength == 0 {
		m.MinFuzzyLength = DefaultMinFuzzyLength
	}
	if m.MaxCompareLength == 0 {
		m.MaxCompareLength = DefaultMaxCompareLength
	}
	if m.CacheSize == 0 {
		m.CacheSize = DefaultCacheSize
	}
	if unset {
		m.EnableFuzzy = DefaultEnableFuzzy
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.RequestsPerMinute == 0 {
		r.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if r.RequestsPerHour == 0 {
		r.RequestsPerHour = DefaultRequestsPerHour
	}
	if r.RequestsPerDay == 0 {
		r.RequestsPerDay = DefaultRequestsPerDay
	}
	if r.BurstSize == 0 {
		r.BurstSize = DefaultBurstSize
	}
	if r.BurstWindow == 0 {
		r.BurstWindow = DefaultBurstWindow
	}
	if r.Cooldown == 0 {
		r.Cooldown = DefaultCooldown
	}
	if r.FlaggedBlockThreshold == 0 {
		r.FlaggedBlockThreshold = DefaultFlaggedBlockThreshold
	}
	if r.FlaggedBlockDuration == 0 {
		r.FlaggedBlockDuration = DefaultFlaggedBlockDuration
	}
	if r.SuspiciousBlockThreshold == 0 {
		r.SuspiciousBlockThreshold = DefaultSuspiciousBlockThreshold
	}
	if r.SuspiciousBlockDuration == 0 {
		r.SuspiciousBlockDuration = DefaultSuspiciousBlockDuration
	}
	if r.IdleRetention == 0 {
		r.IdleRetention = DefaultIdleRetention
	}
	if r.SweepInterval == 0 {
		r.SweepInterval = DefaultSweepInterval
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Logging.Level == "" {
		t.Logging.Level = DefaultLoggingLevel
	}
	if t.Logging.Format == "" {
		t.Logging.Format = DefaultLoggingFormat
	}

	// Metrics enabled defaults to true; same unset-section heuristic as
	// the matcher's EnableFuzzy.
	if !t.Metrics.Enabled && t.Metrics.Path == "" && t.Metrics.Namespace == "" && len(t.Metrics.DurationBuckets) == 0 {
		t.Metrics.Enabled = DefaultMetricsEnabled
	}
	if t.Metrics.Path == "" {
		t.Metrics.Path = DefaultMetricsPath
	}
	if t.Metrics.Namespace == "" {
		t.Metrics.Namespace = DefaultMetricsNamespace
	}
	if len(t.Metrics.DurationBuckets) == 0 {
		t.Metrics.DurationBuckets = DefaultDurationBuckets()
	}

	// Tracing enabled defaults to false (zero value), which is correct.
	if t.Tracing.SampleRatio == 0 {
		t.Tracing.SampleRatio = DefaultSampleRatio
	}
	if t.Tracing.ServiceName == "" {
		t.Tracing.ServiceName = DefaultServiceName
	}
	if !t.Tracing.Insecure && t.Tracing.Endpoint == "" {
		t.Tracing.Insecure = DefaultTracingInsecure
	}
	if t.Tracing.Timeout == 0 {
		t.Tracing.Timeout = DefaultTracingTimeout
	}
}
