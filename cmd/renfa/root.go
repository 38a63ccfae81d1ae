package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "renfa",
	Short: "Convert a right-linear regular grammar into an equivalent ε-NFA",
	Long: `renfa provides two features:
- Converts a right-linear regular grammar into an equivalent ε-NFA.
- Runs input strings through the ε-NFA to decide language membership.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
