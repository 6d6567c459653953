// cmd/varbench/root.go
package varbench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the varbench application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "varbench",
	Short: "Benchmark alternative implementations of the same computation",
	Long:  `varbench runs each labeled variant of a computation a fixed number of times, records wall-clock durations, and reports per-variant summary statistics for comparison.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
