// Package telemetry groups the observability layers for textgate.
//
// # Components
//
//   - logging: structured logging on log/slog
//   - metrics: Prometheus metrics collection
//   - tracing: OpenTelemetry distributed tracing
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
//
// Each layer is independently constructed and injected into the pipeline;
// there is no shared telemetry singleton.
package telemetry
