package tracing

import (
	"context"
	"testing"

	"github.com/Joe3566/Joe-filter-sub002/pkg/config"
)

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	if err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	tracer, err := New(&config.TracingConfig{Enabled: false})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if tracer.Enabled() {
		t.Error("Enabled() = true, want false")
	}

	// Noop spans must be usable end-to-end without a provider.
	ctx, span := tracer.Start(context.Background(), "pipeline.evaluate")
	span.SetAttributes(Outcome("clean"))
	SetStatus(span, nil)
	span.End()

	if TraceID(ctx) != "" {
		t.Errorf("noop span produced a trace ID: %q", TraceID(ctx))
	}
	if err := tracer.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestTraceID_NoSpan(t *testing.T) {
	if got := TraceID(context.Background()); got != "" {
		t.Errorf("TraceID() = %q, want empty", got)
	}
	if got := SpanID(context.Background()); got != "" {
		t.Errorf("SpanID() = %q, want empty", got)
	}
}
