package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
	simulate   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "a11ytour",
		Short:         "a11ytour demonstrates screen reader annotations in the terminal",
		Long:          `a11ytour presents a guided tour of accessibility annotations: grouping, labels, hints, roles, states, spoken language, and custom actions. The tour unlocks when a screen reader is detected (or simulated).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the settings file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable color output")
	cmd.PersistentFlags().BoolVar(&flags.simulate, "simulate", false, "Start with a simulated screen reader attached")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
