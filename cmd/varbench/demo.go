// cmd/varbench/demo.go
package varbench

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/varbench/bench"
	"github.com/mwiater/varbench/report"
	"github.com/mwiater/varbench/workloads"
)

var (
	demoReps int
	demoJSON bool
)

// demoCmd represents the 'demo' command: run one or all of the built-in
// workload suites.
var demoCmd = &cobra.Command{
	Use:   "demo [suite]",
	Short: "Run built-in workload suites",
	Long:  `The 'demo' command runs the built-in workload suites, each comparing alternative implementations of one task. With no argument every suite runs; with a suite name only that suite runs. See 'varbench list suites' for the available names.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suites := workloads.Suites()
		if len(args) == 1 {
			s, ok := workloads.Find(args[0])
			if !ok {
				return fmt.Errorf("unknown suite %q (try 'varbench list suites')", args[0])
			}
			suites = []workloads.Suite{s}
		}

		for _, s := range suites {
			cfg := bench.Config{
				Repetitions: demoReps,
				Observer:    consoleObserver{w: cmd.ErrOrStderr()},
			}
			res, err := bench.Run(s.Variants(), cfg)
			if err != nil {
				return err
			}

			if demoJSON {
				if err := report.WriteJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "SUITE: %s (%s)\n", s.Name, s.Description)
			fmt.Fprint(cmd.OutOrStdout(), report.Table(res))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().IntVar(&demoReps, "reps", 5, "repetitions per variant")
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "emit JSON artifacts instead of tables")
}
