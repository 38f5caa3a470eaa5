package perf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanDuration(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2*time.Second, SpanSnapshot{StartTime: start, EndTime: start.Add(2 * time.Second)}.Duration())
	assert.Equal(t, time.Duration(0), SpanSnapshot{StartTime: start}.Duration())
	assert.Equal(t, time.Duration(0), SpanSnapshot{StartTime: start, EndTime: start.Add(-time.Second)}.Duration())
}

func TestStageDurationsKeepsRequestedOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	spans := []SpanSnapshot{
		{Name: "stats.fold", StartTime: start, EndTime: start.Add(3 * time.Millisecond)},
		{Name: "io.profile.read", StartTime: start, EndTime: start.Add(time.Millisecond)},
	}

	stages := StageDurations(spans, "io.profile.read", "profile.parse", "stats.fold")

	assert.Equal(t, []StageDuration{
		{Name: "io.profile.read", Duration: time.Millisecond},
		{Name: "stats.fold", Duration: 3 * time.Millisecond},
	}, stages)
}

func TestTotalDurationUsesSpanBounds(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	spans := []SpanSnapshot{
		{Name: "a", StartTime: start.Add(time.Second), EndTime: start.Add(2 * time.Second)},
		{Name: "b", StartTime: start, EndTime: start.Add(time.Second)},
		{Name: "broken", StartTime: start.Add(5 * time.Second), EndTime: start},
		{Name: "open", StartTime: start},
	}

	total, err := TotalDuration(spans)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, total)
}

func TestTotalDurationWithoutValidSpansErrors(t *testing.T) {
	_, err := TotalDuration([]SpanSnapshot{{Name: "open"}})
	assert.Error(t, err)
}
