package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ipptctl",
		Short:        "IPPT coach from the terminal",
		Long:         "ipptctl scores IPPT results, works out what a target award needs, and runs the coach chat locally.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newTargetCmd())
	rootCmd.AddCommand(newChatCmd())
	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}
