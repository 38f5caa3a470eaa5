package simple

import (
	"github.com/spf13/cobra"

	"github.com/khicago/covstat/internal/cli"
	"github.com/khicago/covstat/internal/i18n"
	"github.com/khicago/covstat/internal/pipeline"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:           "simple",
		Aliases:       []string{"s"},
		Short:         i18n.T("cmd.simple.short"),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunReport(cmd, "simple", pipeline.SimpleOptions())
		},
	}
}
