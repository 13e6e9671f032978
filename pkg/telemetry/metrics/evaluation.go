package metrics

import (
	"time"

	"github.com/Joe3566/Joe-filter-sub002/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// EvaluationMetrics tracks metrics for pipeline evaluations.
//
// Metrics:
//   - textgate_evaluations_total: Evaluation count by outcome
//   - textgate_stage_duration_seconds: Per-stage duration histogram
type EvaluationMetrics struct {
	evaluationsTotal *prometheus.CounterVec
	stageDuration    *prometheus.HistogramVec
}

// NewEvaluationMetrics creates and registers evaluation metrics with the
// provided registry.
func NewEvaluationMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *EvaluationMetrics {
	em := &EvaluationMetrics{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "evaluations_total",
				Help:      "Total number of pipeline evaluations",
			},
			[]string{"outcome"},
		),

		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   cfg.DurationBuckets,
			},
			[]string{"stage"},
		),
	}

	registry.MustRegister(
		em.evaluationsTotal,
		em.stageDuration,
	)

	return em
}

// RecordEvaluation records a completed evaluation.
func (em *EvaluationMetrics) RecordEvaluation(outcome string, duration time.Duration) {
	em.evaluationsTotal.WithLabelValues(outcome).Inc()
	em.stageDuration.WithLabelValues("total").Observe(duration.Seconds())
}

// RecordStageDuration records the duration of one pipeline stage.
func (em *EvaluationMetrics) RecordStageDuration(stage string, duration time.Duration) {
	em.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}
