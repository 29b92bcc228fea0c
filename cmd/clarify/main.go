package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clarify",
	Short: "Explain errors in scripts for novice programmers",
	Long: `Clarify analyzes scripts and explains syntax problems the way a
patient teacher would: what went wrong, why, and what to try instead.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
