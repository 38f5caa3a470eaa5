package perf

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/sdk/trace"
)

// recorder is a syncer exporter that keeps finished spans as snapshots, in the
// order they ended.
type recorder struct {
	mu    sync.Mutex
	spans []SpanSnapshot
}

func (rec *recorder) ExportSpans(_ context.Context, spans []trace.ReadOnlySpan) error {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	for _, span := range spans {
		rec.spans = append(rec.spans, snapshotSpan(span))
	}
	return nil
}

func (rec *recorder) Shutdown(context.Context) error {
	return nil
}

func (rec *recorder) reset() {
	rec.mu.Lock()
	rec.spans = nil
	rec.mu.Unlock()
}

func (rec *recorder) snapshot() []SpanSnapshot {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	return append(make([]SpanSnapshot, 0, len(rec.spans)), rec.spans...)
}
