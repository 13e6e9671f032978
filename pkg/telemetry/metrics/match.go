package metrics

import (
	"github.com/Joe3566/Joe-filter-sub002/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// MatchMetrics tracks pattern-matching metrics.
//
// Metrics:
//   - textgate_matches_total: Matches by category and tier
//   - textgate_obfuscation_total: Detected obfuscation techniques
type MatchMetrics struct {
	matchesTotal     *prometheus.CounterVec
	obfuscationTotal *prometheus.CounterVec
}

// NewMatchMetrics creates and registers match metrics with the provided
// registry.
func NewMatchMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *MatchMetrics {
	mm := &MatchMetrics{
		matchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "matches_total",
				Help:      "Total number of pattern matches by category and tier",
			},
			[]string{"category", "tier"},
		),

		obfuscationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "obfuscation_total",
				Help:      "Total number of detected obfuscation techniques",
			},
			[]string{"technique"},
		),
	}

	registry.MustRegister(
		mm.matchesTotal,
		mm.obfuscationTotal,
	)

	return mm
}

// RecordMatch records a pattern match.
func (mm *MatchMetrics) RecordMatch(category, tier string) {
	mm.matchesTotal.WithLabelValues(category, tier).Inc()
}

// RecordObfuscation records a detected obfuscation technique.
func (mm *MatchMetrics) RecordObfuscation(technique string) {
	mm.obfuscationTotal.WithLabelValues(technique).Inc()
}
