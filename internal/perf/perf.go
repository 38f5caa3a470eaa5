// Package perf records OpenTelemetry spans in memory so a run can be inspected
// or exported as a diagnostics artifact.
package perf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/khicago/covstat"

var (
	providerMu sync.Mutex
	provider   *sdktrace.TracerProvider
	finished   = &recorder{}
)

func tracerProvider() *sdktrace.TracerProvider {
	providerMu.Lock()
	defer providerMu.Unlock()

	if provider == nil {
		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
			sdktrace.WithSyncer(finished),
		)
	}
	return provider
}

// StartSpan starts a span as a child of any span already carried by ctx.
// Spans are exported when they end.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracerProvider().Tracer(tracerName).Start(ctx, name, opts...)
}

// Mark records a named event on the span carried by ctx.
func Mark(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	if ctx == nil {
		return
	}
	trace.SpanFromContext(ctx).AddEvent(name, trace.WithAttributes(attrs...))
}

// Reset drops every span recorded so far.
func Reset() {
	finished.reset()
}
