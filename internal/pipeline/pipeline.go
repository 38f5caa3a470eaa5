// Package pipeline runs the reader, parser, aggregator and reporter once for
// a given set of options.
package pipeline

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/khicago/covstat/internal/i18n"
	"github.com/khicago/covstat/internal/logger"
	"github.com/khicago/covstat/internal/perf"
	"github.com/khicago/covstat/internal/profile"
	"github.com/khicago/covstat/internal/report"
	"github.com/khicago/covstat/internal/stats"
	"github.com/khicago/covstat/internal/tui"
)

var stageSpanNames = []string{"io.profile.read", "profile.parse", "stats.fold", "report.render"}

type Result struct {
	// Found is false when the profile was missing and the options tolerate that.
	Found   bool
	Summary report.Summary
	Skipped int
}

type Streams struct {
	In  io.Reader
	Out io.Writer
}

type Deps struct {
	FS       afero.Fs
	Logger   *logger.Logger
	ShowView func(ctx context.Context, view string, in io.Reader, out io.Writer) error
}

// Run reads, parses and folds the profile. It does not print anything except
// debug diagnostics.
func Run(ctx context.Context, fs afero.Fs, options Options, log *logger.Logger) (Result, error) {
	loaded, err := profile.ReadProfile(ctx, fs, options.ProfilePath)
	if err != nil {
		var notFound *profile.ProfileNotFoundError
		if errors.As(err, &notFound) && !options.MissingProfileFatal {
			return Result{Found: false}, nil
		}
		return Result{}, err
	}
	log.Debug(i18n.T("pipeline.debug.read", i18n.Vars{"lines": loaded.RawLineCount, "path": options.ProfilePath}))

	records, skipped, err := profile.ParseLines(ctx, loaded.DataLines, options.ModulePrefix)
	if err != nil {
		return Result{}, err
	}
	log.Debug(i18n.T("pipeline.debug.parsed", i18n.Vars{"records": len(records), "skipped": skipped}))

	summary := report.Summary{
		RawLineCount:  loaded.RawLineCount,
		DataLineCount: len(loaded.DataLines),
		Stats:         stats.Fold(ctx, records),
	}

	if options.Preview {
		summary.Preview, err = profile.Preview(loaded.DataLines, options.PreviewLimit)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{Found: true, Summary: summary, Skipped: skipped}, nil
}

// Execute runs the pipeline and writes the rendered report.
func Execute(ctx context.Context, streams Streams, options Options, deps Deps) error {
	result, err := Run(ctx, deps.FS, options, deps.Logger)
	if err != nil {
		return err
	}

	if !result.Found {
		deps.Logger.Log(i18n.T("pipeline.profile.not_found"), true)
		return nil
	}

	useTUI := deps.ShowView != nil && tui.ShouldUseTUI(options.Quiet, streams.In, streams.Out)
	colorize := tui.ShouldColorize(streams.Out)

	view := report.Render(ctx, result.Summary, report.Options{
		PerFile:   options.PerFile,
		Preview:   options.Preview,
		Threshold: options.Threshold,
		Colorize:  colorize,
	})

	logStageDurations(deps.Logger)

	if useTUI {
		return deps.ShowView(ctx, view, streams.In, streams.Out)
	}

	deps.Logger.Log(view, true)
	return nil
}

func logStageDurations(log *logger.Logger) {
	if !log.IsDebug() {
		return
	}

	spans, err := perf.GetSpans()
	if err != nil {
		return
	}
	for _, stage := range perf.StageDurations(spans, stageSpanNames...) {
		log.Debug(i18n.T("pipeline.debug.stage", i18n.Vars{"stage": stage.Name, "duration": stage.Duration.String()}))
	}

	staged := make([]perf.SpanSnapshot, 0, len(stageSpanNames))
	for _, name := range stageSpanNames {
		if span, ok := perf.FindSpanByName(spans, name); ok {
			staged = append(staged, span)
		}
	}
	if total, err := perf.TotalDuration(staged); err == nil {
		log.Debug(i18n.T("pipeline.debug.total", i18n.Vars{"duration": total.String()}))
	}
}
