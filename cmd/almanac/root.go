package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Almanac is a terminal calendar and date picker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newMonthCmd(flags))
	cmd.AddCommand(newWeekCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
