// Package cli adapts cobra commands to the report pipeline.
package cli

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khicago/covstat/internal/logger"
	"github.com/khicago/covstat/internal/perf"
	"github.com/khicago/covstat/internal/pipeline"
	"github.com/khicago/covstat/internal/tui"
)

var newDeps = func(cmd *cobra.Command, quiet bool, debug bool) pipeline.Deps {
	return pipeline.Deps{
		FS:       afero.NewOsFs(),
		Logger:   logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), quiet, debug),
		ShowView: tui.ShowView,
	}
}

// RunReport reads the persistent quiet and debug flags and runs the pipeline
// inside an app.command.<name> span.
func RunReport(cmd *cobra.Command, name string, options pipeline.Options) (err error) {
	ctx, span := perf.StartSpan(cmd.Context(), "app.command."+name)
	defer func() {
		span.SetAttributes(attribute.Bool("success", err == nil))
		span.End()
	}()

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return err
	}

	options.Quiet = quiet
	return runReport(ctx, cmd, options, newDeps(cmd, quiet, debug))
}

func runReport(ctx context.Context, cmd *cobra.Command, options pipeline.Options, deps pipeline.Deps) error {
	streams := pipeline.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
	}
	return pipeline.Execute(ctx, streams, options, deps)
}
