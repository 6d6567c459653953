// cmd/varbench/list_suites.go
package varbench

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/varbench/workloads"
)

// listSuitesCmd implements 'list suites', which enumerates the built-in
// workload suites available to 'varbench demo' and the TUI.
var listSuitesCmd = &cobra.Command{
	Use:   "suites",
	Short: "List the built-in workload suites",
	Long:  `The 'suites' subcommand lists every built-in workload suite with its description.`,
	Run: func(cmd *cobra.Command, args []string) {
		suites := workloads.Suites()

		maxNameLength := 0
		for _, s := range suites {
			if len(s.Name) > maxNameLength {
				maxNameLength = len(s.Name)
			}
		}

		fmt.Println("Built-in suites:")
		for _, s := range suites {
			fmt.Printf("  %s%s%s\n", s.Name, strings.Repeat(" ", maxNameLength-len(s.Name)+2), s.Description)
		}
	},
}

func init() {
	listCmd.AddCommand(listSuitesCmd)
}
