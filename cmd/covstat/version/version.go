package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khicago/covstat/internal/constants"
	"github.com/khicago/covstat/internal/environment"
	"github.com/khicago/covstat/internal/i18n"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use: "version",
		Short: i18n.T("cmd.version.short", i18n.Vars{
			"appName": constants.AppName,
		}),
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), environment.AppVersion())
		},
	}
}
