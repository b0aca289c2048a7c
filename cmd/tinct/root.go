package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "tinct",
		Short:         "tinct renders themed terminal components from design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Load(flags, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the settings file (default $XDG_CONFIG_HOME/tinct/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newModeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
