// Package metrics provides Prometheus metrics collection for textgate.
//
// The Collector owns a Prometheus registry and groups metrics by concern:
//
//   - Evaluation metrics: pipeline evaluations by outcome, per-stage
//     duration histograms.
//   - Match metrics: matches by category and tier, detected obfuscation
//     techniques.
//   - Cache metrics: similarity cache hits, misses, evictions, and size.
//   - Rate limit metrics: rejections by code, currently blocked clients,
//     idle sweep evictions.
//
// All recording methods are no-ops when metrics are disabled in
// configuration, so callers never need their own guards.
//
// Expose the registry over HTTP with Handler:
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	http.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
package metrics
