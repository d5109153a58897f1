package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scalc",
	Short: "Scalc is a minimal interactive calculator for the terminal",
	Long: `Scalc is a minimal interactive calculator for the terminal,
designed to do one computation per run and get out of the way.

It reads two integers and an operation character, then:
  - Prompts for each input, re-asking when a number is malformed
  - Dispatches to one of the four integer operations
  - Prints the result, with quotients shown to two decimal places`,
	Args:          cobra.NoArgs,
	RunE:          runCalc,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Register commands
	rootCmd.AddCommand(versionCmd)
}
