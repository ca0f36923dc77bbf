package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "vtgen",
	Short: "Compile a terminal state machine declaration into a transition table",
	Long: `vtgen compiles per-state transition rules for the ANSI escape sequence
automaton into a dense 16x256 lookup table the runtime parser indexes
directly, one cell per (state, input byte) pair.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if *rootFlags.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug logs")
}

func Execute() error {
	return rootCmd.Execute()
}
