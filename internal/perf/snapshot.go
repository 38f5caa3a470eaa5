package perf

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
)

type SpanSnapshot struct {
	Name         string
	TraceID      string
	SpanID       string
	ParentSpanID string
	StartTime    time.Time
	EndTime      time.Time
	Attributes   map[string]interface{}
	Events       []EventSnapshot
}

type EventSnapshot struct {
	Name       string
	Timestamp  time.Time
	Attributes map[string]interface{}
}

func (span SpanSnapshot) Duration() time.Duration {
	if span.StartTime.IsZero() || span.EndTime.IsZero() || span.EndTime.Before(span.StartTime) {
		return 0
	}
	return span.EndTime.Sub(span.StartTime)
}

// GetSpans returns every span that ended since the last Reset.
func GetSpans() ([]SpanSnapshot, error) {
	if err := tracerProvider().ForceFlush(context.Background()); err != nil {
		return nil, err
	}
	return finished.snapshot(), nil
}

func FindSpanByName(spans []SpanSnapshot, name string) (SpanSnapshot, bool) {
	for _, span := range spans {
		if span.Name == name {
			return span, true
		}
	}
	return SpanSnapshot{}, false
}

func snapshotSpan(span trace.ReadOnlySpan) SpanSnapshot {
	sc := span.SpanContext()
	psc := span.Parent()

	out := SpanSnapshot{
		Name:       span.Name(),
		TraceID:    sc.TraceID().String(),
		SpanID:     sc.SpanID().String(),
		StartTime:  span.StartTime(),
		EndTime:    span.EndTime(),
		Attributes: attributesToMap(span.Attributes()),
	}
	if psc.IsValid() {
		out.ParentSpanID = psc.SpanID().String()
	}

	events := span.Events()
	if len(events) > 0 {
		out.Events = make([]EventSnapshot, 0, len(events))
		for _, event := range events {
			out.Events = append(out.Events, EventSnapshot{
				Name:       event.Name,
				Timestamp:  event.Time,
				Attributes: attributesToMap(event.Attributes),
			})
		}
	}

	return out
}

func attributesToMap(attrs []attribute.KeyValue) map[string]interface{} {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}
