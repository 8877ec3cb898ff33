package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "splitkit",
	Short: "Split source files by line range",
	Long: `splitkit extracts line ranges from source files, applies batch
extraction plans, and suggests split points from structural analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
