package report

import (
	"context"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"

	"github.com/khicago/covstat/internal/profile"
	"github.com/khicago/covstat/internal/stats"
)

func exampleSummary() Summary {
	records := []profile.Record{
		{Location: "github.com/khicago/repoll/pkg/b.go:1.1,2.2", File: "pkg/b.go", Count: 1},
		{Location: "github.com/khicago/repoll/pkg/a.go:1.1,2.2", File: "pkg/a.go", Count: 1},
		{Location: "github.com/khicago/repoll/pkg/a.go:3.1,4.2", File: "pkg/a.go", Count: 0},
	}
	return Summary{
		RawLineCount:  4,
		DataLineCount: 3,
		Stats:         stats.Fold(context.Background(), records),
		Preview: []profile.PreviewEntry{
			{Position: 1, Location: "github.com/khicago/repoll/pkg/a.go:1.1,2.2", Count: 1},
			{Position: 2, Location: "github.com/khicago/repoll/pkg/a.go:3.1,4.2", Count: 0},
			{Position: 3, Location: "github.com/khicago/repoll/pkg/b.go:1.1,2.2", Count: 1},
		},
	}
}

func TestRenderAnalysis(t *testing.T) {
	output := Render(context.Background(), exampleSummary(), Options{PerFile: true, Threshold: 97})

	expected := "=== Coverage Analysis ===\n" +
		"Total statements: 3\n" +
		"Covered statements: 2\n" +
		"Overall coverage: 66.67%\n" +
		"\n" +
		"=== Per-file Coverage ===\n" +
		"pkg/a.go                         1/  2 ( 50.00%)\n" +
		"pkg/b.go                         1/  1 (100.00%)\n" +
		"============================================================\n" +
		"TOTAL                            2/  3 ( 66.67%)\n" +
		"❌ Coverage is 66.67%, need 30.33% more to reach 97%"
	assert.Equal(t, expected, output)
}

func TestRenderSimple(t *testing.T) {
	output := Render(context.Background(), exampleSummary(), Options{Preview: true, Threshold: 97})

	expected := "=== Simple Coverage Calculation ===\n" +
		"Total lines in coverage file: 4\n" +
		"Data lines (excluding mode line): 3\n" +
		"Covered lines: 2\n" +
		"Coverage percentage: 66.67%\n" +
		"❌ Coverage is 66.67%, need 30.33% more to reach 97%\n" +
		"\n" +
		"=== Sample coverage lines ===\n" +
		"Line 1: github.com/khicago/repoll/pkg/a.go:1.1,2.2 -> 1 (covered)\n" +
		"Line 2: github.com/khicago/repoll/pkg/a.go:3.1,4.2 -> 0 (not covered)\n" +
		"Line 3: github.com/khicago/repoll/pkg/b.go:1.1,2.2 -> 1 (covered)"
	assert.Equal(t, expected, output)
}

func TestRenderEmptyProfile(t *testing.T) {
	summary := Summary{RawLineCount: 1, Stats: stats.NewAccumulator()}

	output := Render(context.Background(), summary, Options{PerFile: true, Threshold: 97})

	expected := "=== Coverage Analysis ===\n" +
		"Total statements: 0\n" +
		"Covered statements: 0\n" +
		"Overall coverage: 0.00%\n" +
		"\n" +
		"=== Per-file Coverage ===\n" +
		"============================================================\n" +
		"TOTAL                            0/  0 (  0.00%)\n" +
		"❌ Coverage is 0.00%, need 97.00% more to reach 97%"
	assert.Equal(t, expected, output)
}

func TestRenderLongFileNamesAreNotCut(t *testing.T) {
	name := "internal/a/very/long/path/to/some/file.go"
	acc := stats.NewAccumulator()
	acc.Add(profile.Record{File: name, Count: 1})

	output := Render(context.Background(), Summary{Stats: acc}, Options{PerFile: true, Threshold: 97})

	assert.Contains(t, output, name+"   1/  1 (100.00%)")
	assert.Contains(t, output, "✅ Coverage target of 97% achieved!")
}

func TestRenderPerFileRowsSortedRegardlessOfInsertion(t *testing.T) {
	acc := stats.NewAccumulator()
	for _, name := range []string{"z.go", "m.go", "a.go"} {
		acc.Add(profile.Record{File: name, Count: 1})
	}

	output := Render(context.Background(), Summary{Stats: acc}, Options{PerFile: true, Threshold: 97})

	first := strings.Index(output, "a.go")
	middle := strings.Index(output, "m.go")
	last := strings.Index(output, "z.go")
	assert.Less(t, first, middle)
	assert.Less(t, middle, last)
}

func TestRenderColorizedKeepsContent(t *testing.T) {
	output := Render(context.Background(), exampleSummary(), Options{PerFile: true, Threshold: 97, Colorize: true})

	assert.Contains(t, output, "Coverage Analysis")
	assert.Contains(t, output, "pkg/a.go                         1/  2 ( 50.00%)")
	assert.Contains(t, output, "need 30.33% more")
}

func TestVerdictThresholdBoundary(t *testing.T) {
	exact := stats.Counts{Total: 100, Covered: 97}
	below := stats.Counts{Total: 10000, Covered: 9699}

	assert.Equal(t, "✅ Coverage target of 97% achieved!", Verdict(exact.Percent(), 97))
	assert.Equal(t, "❌ Coverage is 96.99%, need 0.01% more to reach 97%", Verdict(below.Percent(), 97))
	assert.True(t, Passed(100, 97))
	assert.False(t, Passed(96.999, 97))
}

func TestRenderSnapshots(t *testing.T) {
	summary := exampleSummary()

	t.Run("analyze", func(t *testing.T) {
		snaps.MatchSnapshot(t, Render(context.Background(), summary, Options{PerFile: true, Threshold: 97}))
	})

	t.Run("simple", func(t *testing.T) {
		snaps.MatchSnapshot(t, Render(context.Background(), summary, Options{Preview: true, Threshold: 97}))
	})
}
