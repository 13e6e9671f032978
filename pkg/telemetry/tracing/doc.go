// Package tracing provides OpenTelemetry distributed tracing for textgate.
//
// The Tracer wraps the OpenTelemetry SDK with configuration-driven setup:
// an OTLP gRPC exporter, parent-based ratio sampling, and W3C trace
// context propagation. When tracing is disabled a noop tracer is returned,
// so instrumentation sites never need their own guards:
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "pipeline.evaluate")
//	defer span.End()
package tracing
