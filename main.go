package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khicago/covstat/cmd/covstat"
	"github.com/khicago/covstat/internal/i18n"
	"github.com/khicago/covstat/internal/logger"
	"github.com/khicago/covstat/internal/perf"
)

const perfLifecycle = "app.lifecycle"

type runDeps struct {
	execute func(context.Context) error
	args    []string
	stderr  io.Writer
	getwd   func() (string, error)
	fs      afero.Fs
}

type perfExportConfig struct {
	enabled bool
	debug   bool
	baseDir string
	outDir  string
}

func main() {
	os.Exit(runWithDeps(runDeps{
		execute: covstat.ExecuteContext,
		args:    os.Args[1:],
		stderr:  os.Stderr,
		getwd:   os.Getwd,
		fs:      afero.NewOsFs(),
	}))
}

func runWithDeps(deps runDeps) int {
	perf.Reset()

	ctx, span := perf.StartSpan(context.Background(), perfLifecycle)
	err := deps.execute(ctx)
	span.SetAttributes(attribute.Bool("success", err == nil))
	span.End()

	log := logger.New(io.Discard, deps.stderr, false, false)
	exportPerf(deps, log)

	if err != nil {
		log.Error(err.Error())
		return 1
	}
	return 0
}

func exportPerf(deps runDeps, log *logger.Logger) {
	cwd, err := deps.getwd()
	if err != nil {
		cwd = "."
	}

	cfg := perfExportConfigFromArgs(deps.args, cwd)
	if !cfg.enabled {
		return
	}

	spans, err := perf.GetSpans()
	if err == nil {
		var path string
		path, err = perf.ExportToFile(deps.fs, cfg.outDir, cfg.baseDir, spans)
		if err == nil && cfg.debug {
			log.Error(i18n.T("perf.exported", i18n.Vars{"path": path}))
		}
	}
	if err != nil {
		log.Error(i18n.T("perf.export_failed", i18n.Vars{"error": err.Error()}))
	}
}

func perfExportConfigFromArgs(args []string, cwd string) perfExportConfig {
	flags := pflag.NewFlagSet("perf", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)

	enabled := flags.Bool("perf", false, "")
	outDir := flags.String("perf-out-dir", "", "")
	debug := flags.BoolP("debug", "d", false, "")
	flags.BoolP("quiet", "q", false, "")
	_ = flags.Parse(args)

	cfg := perfExportConfig{
		enabled: *enabled,
		debug:   *debug,
		baseDir: cwd,
		outDir:  cwd,
	}
	if *outDir != "" {
		if filepath.IsAbs(*outDir) {
			cfg.outDir = filepath.Clean(*outDir)
		} else {
			cfg.outDir = filepath.Join(cwd, *outDir)
		}
	}
	return cfg
}
