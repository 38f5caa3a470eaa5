package perf

import (
	"errors"
	"time"
)

type StageDuration struct {
	Name     string
	Duration time.Duration
}

// StageDurations returns the duration of the first span matching each name,
// in the order the names are given. Names without a span are left out.
func StageDurations(spans []SpanSnapshot, names ...string) []StageDuration {
	out := make([]StageDuration, 0, len(names))
	for _, name := range names {
		span, ok := FindSpanByName(spans, name)
		if !ok {
			continue
		}
		out = append(out, StageDuration{Name: name, Duration: span.Duration()})
	}
	return out
}

// TotalDuration measures from the earliest span start to the latest span end.
func TotalDuration(spans []SpanSnapshot) (time.Duration, error) {
	var minStart time.Time
	var maxEnd time.Time

	for _, span := range spans {
		if span.StartTime.IsZero() || span.EndTime.IsZero() {
			continue
		}
		if span.EndTime.Before(span.StartTime) {
			continue
		}

		if minStart.IsZero() || span.StartTime.Before(minStart) {
			minStart = span.StartTime
		}
		if maxEnd.IsZero() || maxEnd.Before(span.EndTime) {
			maxEnd = span.EndTime
		}
	}

	if minStart.IsZero() || maxEnd.IsZero() {
		return 0, errors.New("no spans with valid timestamps")
	}

	return maxEnd.Sub(minStart), nil
}
