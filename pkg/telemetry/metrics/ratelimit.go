package metrics

import (
	"github.com/Joe3566/Joe-filter-sub002/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RateLimitMetrics tracks rate limiter metrics.
//
// Metrics:
//   - textgate_ratelimit_rejections_total: Rejections by code
//   - textgate_ratelimit_blocked_clients: Currently blocked clients
//   - textgate_ratelimit_sweep_evictions_total: Idle clients evicted
type RateLimitMetrics struct {
	rejectionsTotal *prometheus.CounterVec
	blockedClients  prometheus.Gauge
	sweepEvictions  prometheus.Counter
}

// NewRateLimitMetrics creates and registers rate limiter metrics with the
// provided registry.
func NewRateLimitMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RateLimitMetrics {
	rm := &RateLimitMetrics{
		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "ratelimit_rejections_total",
				Help:      "Total number of rate-limit rejections by code",
			},
			[]string{"code"},
		),

		blockedClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "ratelimit_blocked_clients",
				Help:      "Number of currently blocked clients",
			},
		),

		sweepEvictions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "ratelimit_sweep_evictions_total",
				Help:      "Total number of idle client states evicted by the sweeper",
			},
		),
	}

	registry.MustRegister(
		rm.rejectionsTotal,
		rm.blockedClients,
		rm.sweepEvictions,
	)

	return rm
}

// RecordRejection records a rate-limit rejection.
func (rm *RateLimitMetrics) RecordRejection(code string) {
	rm.rejectionsTotal.WithLabelValues(code).Inc()
}

// UpdateBlocked updates the blocked-client gauge.
func (rm *RateLimitMetrics) UpdateBlocked(count int) {
	rm.blockedClients.Set(float64(count))
}

// RecordSweepEvictions adds evicted clients to the sweep counter.
func (rm *RateLimitMetrics) RecordSweepEvictions(count int) {
	rm.sweepEvictions.Add(float64(count))
}
