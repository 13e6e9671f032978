package metrics

import (
	"time"

	"github.com/Joe3566/Joe-filter-sub002/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector is the orchestrator for all Prometheus metrics in textgate.
// It manages metric registration and provides a unified interface for
// recording metrics across all components.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	evaluation *EvaluationMetrics
	match      *MatchMetrics
	cache      *CacheMetrics
	rateLimit  *RateLimitMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is created.
//
// Example:
//
//	cfg := &config.MetricsConfig{Enabled: true, Namespace: "textgate"}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "textgate"
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = config.DefaultDurationBuckets()
	}

	return &Collector{
		config:     cfg,
		registry:   registry,
		evaluation: NewEvaluationMetrics(cfg, registry),
		match:      NewMatchMetrics(cfg, registry),
		cache:      NewCacheMetrics(cfg, registry),
		rateLimit:  NewRateLimitMetrics(cfg, registry),
	}
}

// RecordEvaluation records a completed pipeline evaluation.
//
// Parameters:
//   - outcome: Evaluation outcome ("clean", "suspicious", "rejected")
//   - duration: End-to-end evaluation duration
func (c *Collector) RecordEvaluation(outcome string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.evaluation.RecordEvaluation(outcome, duration)
}

// RecordStageDuration records the duration of a single pipeline stage.
//
// Parameters:
//   - stage: Stage name ("ratelimit", "normalize", "match")
//   - duration: Stage duration
func (c *Collector) RecordStageDuration(stage string, duration time.Duration) {
	if !c.config.Enabled {
		return
	}
	c.evaluation.RecordStageDuration(stage, duration)
}

// RecordMatch records a pattern match.
//
// Parameters:
//   - category: Matched category (e.g. "harmful_explosives")
//   - tier: Matching tier that produced the hit ("exact", "keyword", "fuzzy")
func (c *Collector) RecordMatch(category, tier string) {
	if !c.config.Enabled {
		return
	}
	c.match.RecordMatch(category, tier)
}

// RecordObfuscation records a detected obfuscation technique.
//
// Parameters:
//   - technique: Technique name (e.g. "leetspeak", "homoglyphs")
func (c *Collector) RecordObfuscation(technique string) {
	if !c.config.Enabled {
		return
	}
	c.match.RecordObfuscation(technique)
}

// RecordCacheHit records a similarity cache hit.
func (c *Collector) RecordCacheHit(cacheName string) {
	if !c.config.Enabled {
		return
	}
	c.cache.RecordHit(cacheName)
}

// RecordCacheMiss records a similarity cache miss.
func (c *Collector) RecordCacheMiss(cacheName string) {
	if !c.config.Enabled {
		return
	}
	c.cache.RecordMiss(cacheName)
}

// RecordCacheEviction records a similarity cache eviction.
func (c *Collector) RecordCacheEviction(cacheName string) {
	if !c.config.Enabled {
		return
	}
	c.cache.RecordEviction(cacheName)
}

// RecordCacheDelta applies a batch of cache hit, miss, and eviction
// counts taken from a cumulative snapshot.
func (c *Collector) RecordCacheDelta(cacheName string, hits, misses, evictions uint64) {
	if !c.config.Enabled {
		return
	}
	c.cache.AddDelta(cacheName, hits, misses, evictions)
}

// UpdateCacheSize updates the current entry count of a cache.
func (c *Collector) UpdateCacheSize(cacheName string, size int) {
	if !c.config.Enabled {
		return
	}
	c.cache.UpdateSize(cacheName, size)
}

// RecordRejection records a rate-limit rejection.
//
// Parameters:
//   - code: Rejection code (e.g. "minute_limit", "burst", "blocked")
func (c *Collector) RecordRejection(code string) {
	if !c.config.Enabled {
		return
	}
	c.rateLimit.RecordRejection(code)
}

// UpdateBlockedClients updates the gauge of currently blocked clients.
func (c *Collector) UpdateBlockedClients(count int) {
	if !c.config.Enabled {
		return
	}
	c.rateLimit.UpdateBlocked(count)
}

// RecordSweepEvictions records client states removed by an idle sweep.
func (c *Collector) RecordSweepEvictions(count int) {
	if !c.config.Enabled {
		return
	}
	c.rateLimit.RecordSweepEvictions(count)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
