package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/Joe3566/Joe-filter-sub002/pkg/config"
	"github.com/Joe3566/Joe-filter-sub002/pkg/limits/ratelimit"
	"github.com/Joe3566/Joe-filter-sub002/pkg/match"
	"github.com/Joe3566/Joe-filter-sub002/pkg/normalize"
	"github.com/Joe3566/Joe-filter-sub002/pkg/patterns"
	"github.com/Joe3566/Joe-filter-sub002/pkg/telemetry/logging"
	"github.com/Joe3566/Joe-filter-sub002/pkg/telemetry/metrics"
	"github.com/Joe3566/Joe-filter-sub002/pkg/telemetry/tracing"
)

// Stage labels for duration metrics.
const (
	stageRateLimit = "ratelimit"
	stageNormalize = "normalize"
	stageMatch     = "match"
)

// Tier labels for match metrics.
const (
	tierExact   = "exact"
	tierFuzzy   = "fuzzy"
	tierKeyword = "keyword"
)

// similarityCacheName is the label under which the matcher's cache
// statistics are exported.
const similarityCacheName = "similarity"

// Engine runs the full admission pipeline for text submissions. It is
// safe for concurrent use; the pattern table may be swapped at runtime
// via ReloadPatterns without blocking in-flight evaluations.
type Engine struct {
	matcher   atomic.Pointer[match.Matcher]
	matchOpts match.Options
	limiter   *ratelimit.Limiter
	logger    *logging.Logger
	metrics   *metrics.Collector
	tracer    *tracing.Tracer

	newID func() string

	// cacheMu guards lastCache, the previous similarity-cache snapshot
	// used to publish counter deltas.
	cacheMu   sync.Mutex
	lastCache match.CacheStats
}

// New creates an Engine from a built pattern index and configuration.
// Telemetry components may be nil, in which case disabled substitutes
// are used.
func New(index *patterns.Index, cfg *config.Config, logger *logging.Logger, collector *metrics.Collector, tracer *tracing.Tracer) (*Engine, error) {
	if index == nil {
		return nil, fmt.Errorf("pattern index is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	if logger == nil {
		logger = logging.Discard()
	}
	if collector == nil {
		collector = metrics.NewCollector(&config.MetricsConfig{}, nil)
	}
	if tracer == nil {
		var err error
		tracer, err = tracing.New(&config.TracingConfig{})
		if err != nil {
			return nil, fmt.Errorf("failed to create tracer: %w", err)
		}
	}

	opts := matchOptions(cfg.Matcher)
	e := &Engine{
		matchOpts: opts,
		limiter:   ratelimit.NewLimiter(limiterConfig(cfg.RateLimit)),
		logger:    logger,
		metrics:   collector,
		tracer:    tracer,
		newID:     uuid.NewString,
	}
	e.matcher.Store(match.NewMatcher(index, opts))
	e.limiter.OnSweep(func(evicted int) {
		collector.RecordSweepEvictions(evicted)
	})
	return e, nil
}

// Evaluate runs one submission through the pipeline: rate-limit check,
// normalization, tiered matching, and escalation feedback. A rejected
// request is a normal result, not an error; content analysis is skipped
// entirely for it.
func (e *Engine) Evaluate(ctx context.Context, clientID, text string) *Evaluation {
	start := time.Now()
	requestID := e.newID()

	ctx = logging.WithRequestID(ctx, requestID)
	ctx = logging.WithClientID(ctx, clientID)

	ctx, span := e.tracer.Start(ctx, "pipeline.evaluate")
	defer span.End()
	span.SetAttributes(
		tracing.RequestID(requestID),
		tracing.ClientID(clientID),
		tracing.TextLength(len(text)),
	)

	eval := &Evaluation{
		RequestID: requestID,
		ClientID:  clientID,
	}

	limitStart := time.Now()
	_, limitSpan := e.tracer.Start(ctx, "pipeline.ratelimit")
	check := e.limiter.CheckLimit(clientID)
	limitSpan.End()
	e.metrics.RecordStageDuration(stageRateLimit, time.Since(limitStart))
	eval.RateLimit = check

	if !check.Allowed {
		eval.Outcome = OutcomeRejected
		eval.Duration = time.Since(start)
		e.metrics.RecordRejection(check.Code)
		e.metrics.UpdateBlockedClients(len(e.limiter.ListBlocked()))
		e.metrics.RecordEvaluation(OutcomeRejected, eval.Duration)
		span.SetAttributes(
			tracing.Outcome(OutcomeRejected),
			tracing.RejectionCode(check.Code),
		)
		e.logger.WarnContext(ctx, "request rejected",
			"code", check.Code,
			"reason", check.Reason,
			"retry_after", check.RetryAfter,
		)
		return eval
	}
	eval.Allowed = true

	normStart := time.Now()
	_, normSpan := e.tracer.Start(ctx, "pipeline.normalize")
	eval.Normalized = normalize.Normalize(text)
	eval.Obfuscation = normalize.DetectObfuscation(text)
	normSpan.End()
	e.metrics.RecordStageDuration(stageNormalize, time.Since(normStart))
	for _, technique := range eval.Obfuscation {
		e.metrics.RecordObfuscation(string(technique))
	}

	matcher := e.matcher.Load()
	matchStart := time.Now()
	_, matchSpan := e.tracer.Start(ctx, "pipeline.match")
	result := matcher.Match(eval.Normalized)
	matchSpan.End()
	e.metrics.RecordStageDuration(stageMatch, time.Since(matchStart))
	eval.Match = result

	for _, m := range result.ExactMatches {
		e.metrics.RecordMatch(m.Category, tierExact)
	}
	for _, m := range result.FuzzyMatches {
		e.metrics.RecordMatch(m.Category, tierFuzzy)
	}
	for _, category := range result.KeywordHits {
		e.metrics.RecordMatch(category, tierKeyword)
	}
	e.publishCacheStats(matcher.CacheStats())

	flagged := eval.Flagged()
	suspicious := result.Suspicious || len(eval.Obfuscation) > 0
	e.limiter.RecordRequest(clientID, flagged, suspicious)
	if flagged || suspicious {
		e.metrics.UpdateBlockedClients(len(e.limiter.ListBlocked()))
	}

	if suspicious {
		eval.Outcome = OutcomeSuspicious
	} else {
		eval.Outcome = OutcomeClean
	}
	eval.Duration = time.Since(start)
	e.metrics.RecordEvaluation(eval.Outcome, eval.Duration)

	span.SetAttributes(
		tracing.Outcome(eval.Outcome),
		tracing.Categories(len(result.KeywordHits)),
		tracing.MaxScore(result.MaxScore),
		tracing.Obfuscation(len(eval.Obfuscation)),
	)
	e.logger.InfoContext(ctx, "request evaluated",
		"outcome", eval.Outcome,
		"max_score", result.MaxScore,
		"exact_matches", len(result.ExactMatches),
		"fuzzy_matches", len(result.FuzzyMatches),
		"obfuscation", len(eval.Obfuscation),
		"duration", eval.Duration,
	)
	return eval
}

// ReloadPatterns builds an index from the given category table and
// swaps it in atomically. In-flight evaluations finish against the old
// table; a build failure keeps the previous table.
func (e *Engine) ReloadPatterns(table map[string][]string) error {
	index, err := patterns.Build(table)
	if err != nil {
		return fmt.Errorf("failed to rebuild pattern index: %w", err)
	}
	e.matcher.Store(match.NewMatcher(index, e.matchOpts))

	// The fresh matcher starts with zeroed cache counters.
	e.cacheMu.Lock()
	e.lastCache = match.CacheStats{}
	e.cacheMu.Unlock()

	e.logger.Info("pattern table reloaded",
		"categories", len(index.Categories()),
		"phrases", index.Len(),
	)
	return nil
}

// Limiter exposes the engine's rate limiter for admin operations such
// as unblocking clients and starting the idle sweeper.
func (e *Engine) Limiter() *ratelimit.Limiter {
	return e.limiter
}

// Matcher returns the current matcher. Callers must not retain it
// across pattern reloads.
func (e *Engine) Matcher() *match.Matcher {
	return e.matcher.Load()
}

// publishCacheStats exports the delta between consecutive
// similarity-cache snapshots plus the current entry gauge.
func (e *Engine) publishCacheStats(stats match.CacheStats) {
	e.cacheMu.Lock()
	prev := e.lastCache
	e.lastCache = stats
	e.cacheMu.Unlock()

	// A counter moving backwards means the matcher was swapped between
	// snapshots; treat the new snapshot as the whole delta.
	if stats.Hits < prev.Hits || stats.Misses < prev.Misses || stats.Evictions < prev.Evictions {
		prev = match.CacheStats{}
	}
	e.metrics.RecordCacheDelta(similarityCacheName,
		stats.Hits-prev.Hits,
		stats.Misses-prev.Misses,
		stats.Evictions-prev.Evictions,
	)
	e.metrics.UpdateCacheSize(similarityCacheName, stats.Entries)
}

// matchOptions maps the matcher configuration section onto match
// options.
func matchOptions(cfg config.MatcherConfig) match.Options {
	return match.Options{
		FuzzyThreshold:   cfg.FuzzyThreshold,
		TopK:             cfg.TopK,
		MinFuzzyLength:   cfg.MinFuzzyLength,
		EnableFuzzy:      cfg.EnableFuzzy,
		MaxCompareLength: cfg.MaxCompareLength,
		CacheSize:        cfg.CacheSize,
	}
}

// limiterConfig maps the rate-limit configuration section onto the
// limiter config.
func limiterConfig(cfg config.RateLimitConfig) ratelimit.Config {
	return ratelimit.Config{
		RequestsPerMinute:        cfg.RequestsPerMinute,
		RequestsPerHour:          cfg.RequestsPerHour,
		RequestsPerDay:           cfg.RequestsPerDay,
		BurstSize:                cfg.BurstSize,
		BurstWindow:              cfg.BurstWindow,
		Cooldown:                 cfg.Cooldown,
		FlaggedBlockThreshold:    cfg.FlaggedBlockThreshold,
		FlaggedBlockDuration:     cfg.FlaggedBlockDuration,
		SuspiciousBlockThreshold: cfg.SuspiciousBlockThreshold,
		SuspiciousBlockDuration:  cfg.SuspiciousBlockDuration,
		IdleRetention:            cfg.IdleRetention,
		SweepInterval:            cfg.SweepInterval,
	}
}
