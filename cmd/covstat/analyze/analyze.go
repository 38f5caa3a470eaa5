package analyze

import (
	"github.com/spf13/cobra"

	"github.com/khicago/covstat/internal/cli"
	"github.com/khicago/covstat/internal/i18n"
	"github.com/khicago/covstat/internal/pipeline"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:           "analyze",
		Aliases:       []string{"a"},
		Short:         i18n.T("cmd.analyze.short"),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunReport(cmd, "analyze", pipeline.AnalyzeOptions())
		},
	}
}
