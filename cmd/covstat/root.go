// Package covstat assembles the covstat command tree.
package covstat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/khicago/covstat/cmd/covstat/analyze"
	"github.com/khicago/covstat/cmd/covstat/simple"
	"github.com/khicago/covstat/cmd/covstat/version"
	"github.com/khicago/covstat/internal/constants"
	"github.com/khicago/covstat/internal/environment"
	"github.com/khicago/covstat/internal/i18n"
)

func Command() *cobra.Command {
	analyzeCmd := analyze.Command()

	rootCmd := &cobra.Command{
		Use:           constants.CommandName,
		Short:         i18n.T("app.description"),
		Version:       environment.AppVersion(),
		Args:          cobra.NoArgs,
		RunE:          analyzeCmd.RunE,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cobra.MousetrapHelpText = ""

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.BoolP("quiet", "q", false, i18n.T("flag.quiet"))
	flags.BoolP("debug", "d", false, i18n.T("flag.debug"))
	flags.Bool("perf", false, i18n.T("flag.perf"))
	flags.String("perf-out-dir", "", i18n.T("flag.perf_out_dir"))

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(simple.Command())
	rootCmd.AddCommand(version.Command())

	translateDefaultHelpFacilities(rootCmd)
	fixFlagUsageAlignment(rootCmd)

	return rootCmd
}

func translateDefaultHelpFacilities(rootCmd *cobra.Command) {
	allCommands := append([]*cobra.Command{rootCmd}, rootCmd.Commands()...)

	for _, cmd := range allCommands {
		cmd.InitDefaultHelpFlag()
		cmd.Flags().Lookup("help").Usage = i18n.T("cmd.help.template", i18n.Vars{"command": cmd.Name()})
	}

	rootCmd.InitDefaultHelpCmd()
	helpCmd, _, err := rootCmd.Find([]string{"help"})
	if err != nil {
		return
	}

	helpCmd.Short = i18n.T("cmd.help.usage.short")
	helpCmd.Long = i18n.T("cmd.help.usage.long", i18n.Vars{"appName": rootCmd.Name()})
	helpCmd.Run = func(c *cobra.Command, args []string) {
		cmd, _, e := c.Root().Find(args)
		// the root takes no arguments, so landing on it with a topic means no subcommand matched
		if cmd == nil || e != nil || (cmd == c.Root() && len(args) > 0) {
			c.PrintErrln(i18n.T("cmd.help.error", i18n.Vars{"topic": fmt.Sprintf("%#q", args)}) + "\n")
			cobra.CheckErr(c.Root().Usage())
			return
		}
		cmd.InitDefaultHelpFlag()
		cmd.InitDefaultVersionFlag()
		cobra.CheckErr(cmd.Help())
	}
}

func fixFlagUsageAlignment(rootCmd *cobra.Command) {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	usageTemplate := rootCmd.UsageTemplate()
	usageTemplate = strings.ReplaceAll(usageTemplate, ".FlagUsages", fmt.Sprintf(".FlagUsagesWrapped %d", width))
	rootCmd.SetUsageTemplate(usageTemplate)
}

func ExecuteContext(ctx context.Context) error {
	return Command().ExecuteContext(ctx)
}
