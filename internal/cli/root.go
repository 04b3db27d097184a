// Package cli defines the ecofarm command-line interface. The CLI is a
// first-party consumer of the assistant client wrapper, exercising the same
// request pipeline browser clients go through.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ecofarm",
	Short: "Agricultural AI assistant",
	Long:  `Ask farming questions against the EcoFarm AI proxy. Use 'ask --help' for options.`,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
