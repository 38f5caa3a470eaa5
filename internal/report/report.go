// Package report renders coverage statistics as fixed-width text.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/khicago/covstat/internal/perf"
	"github.com/khicago/covstat/internal/profile"
	"github.com/khicago/covstat/internal/stats"
	"github.com/khicago/covstat/internal/tui"
)

const (
	nameColumnWidth = 30
	separatorWidth  = 60
	totalRowName    = "TOTAL"
)

type Summary struct {
	RawLineCount  int
	DataLineCount int
	Stats         stats.Accumulator
	Preview       []profile.PreviewEntry
}

type Options struct {
	// PerFile adds the per-file table and the TOTAL row.
	PerFile bool
	// Preview switches to the line-count header and appends the sample lines.
	Preview   bool
	Threshold float64
	Colorize  bool
}

func Render(ctx context.Context, summary Summary, options Options) string {
	_, span := perf.StartSpan(ctx, "report.render")
	defer span.End()

	lines := make([]string, 0)
	if options.Preview {
		lines = append(lines, simpleHeader(summary, options)...)
	} else {
		lines = append(lines, analysisHeader(summary, options)...)
	}

	if options.PerFile {
		lines = append(lines, perFileTable(summary.Stats, options)...)
	}

	lines = append(lines, styledVerdict(summary.Stats.Global.Percent(), options))

	if options.Preview {
		lines = append(lines, "", title("=== Sample coverage lines ===", options))
		for _, entry := range summary.Preview {
			lines = append(lines, previewLine(entry))
		}
	}

	return strings.Join(lines, "\n")
}

// Verdict is the pass or fail line for an overall percentage.
func Verdict(percent float64, threshold float64) string {
	if Passed(percent, threshold) {
		return fmt.Sprintf("✅ Coverage target of %g%% achieved!", threshold)
	}
	return fmt.Sprintf("❌ Coverage is %.2f%%, need %.2f%% more to reach %g%%", percent, threshold-percent, threshold)
}

func Passed(percent float64, threshold float64) bool {
	return percent >= threshold
}

func analysisHeader(summary Summary, options Options) []string {
	global := summary.Stats.Global
	return []string{
		title("=== Coverage Analysis ===", options),
		fmt.Sprintf("Total statements: %d", global.Total),
		fmt.Sprintf("Covered statements: %d", global.Covered),
		fmt.Sprintf("Overall coverage: %.2f%%", global.Percent()),
		"",
	}
}

func simpleHeader(summary Summary, options Options) []string {
	global := summary.Stats.Global
	return []string{
		title("=== Simple Coverage Calculation ===", options),
		fmt.Sprintf("Total lines in coverage file: %d", summary.RawLineCount),
		fmt.Sprintf("Data lines (excluding mode line): %d", summary.DataLineCount),
		fmt.Sprintf("Covered lines: %d", global.Covered),
		fmt.Sprintf("Coverage percentage: %.2f%%", global.Percent()),
	}
}

func perFileTable(acc stats.Accumulator, options Options) []string {
	names := acc.SortedFiles()
	lines := make([]string, 0, len(names)+4)
	lines = append(lines, title("=== Per-file Coverage ===", options))
	for _, name := range names {
		lines = append(lines, tableRow(name, *acc.Files[name]))
	}
	lines = append(lines, strings.Repeat("=", separatorWidth))
	lines = append(lines, tableRow(totalRowName, acc.Global))
	return lines
}

func tableRow(name string, counts stats.Counts) string {
	return fmt.Sprintf("%-*s %3d/%3d (%6.2f%%)", nameColumnWidth, name, counts.Covered, counts.Total, counts.Percent())
}

func previewLine(entry profile.PreviewEntry) string {
	state := "not covered"
	if entry.Covered() {
		state = "covered"
	}
	return fmt.Sprintf("Line %d: %s -> %d (%s)", entry.Position, entry.Location, entry.Count, state)
}

func title(text string, options Options) string {
	if !options.Colorize {
		return text
	}
	return tui.TitleStyle.Render(text)
}

func styledVerdict(percent float64, options Options) string {
	verdict := Verdict(percent, options.Threshold)
	if !options.Colorize {
		return verdict
	}
	if Passed(percent, options.Threshold) {
		return tui.PassStyle.Render(verdict)
	}
	return tui.FailStyle.Render(verdict)
}
