package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	theme      string
	locale     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "restyle",
		Short:         "Restyle renders environment driven, localized terminal styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if flags.verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the interactive demo.
			return runDemo(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML or TOML configuration file")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Initial theme identifier")
	cmd.PersistentFlags().StringVarP(&flags.locale, "locale", "l", "", "Initial locale, e.g. fr-CA")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
