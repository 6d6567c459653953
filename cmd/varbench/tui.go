// cmd/varbench/tui.go
package varbench

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/varbench/cli"
)

var startGUI = cli.StartGUI

// tuiCmd represents the 'tui' command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and run suites interactively",
	Long:  `The 'tui' command starts the interactive terminal interface: pick a built-in suite, watch its run progress live, and inspect the resulting summary table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startGUI(viper.GetInt("tui-reps"))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().Int("reps", 5, "repetitions per variant")
	viper.BindPFlag("tui-reps", tuiCmd.Flags().Lookup("reps"))
}
