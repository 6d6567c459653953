// cmd/varbench/run.go
package varbench

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/varbench/bench"
	"github.com/mwiater/varbench/report"
	"github.com/mwiater/varbench/suite"
)

var (
	runReps    int
	runJSON    bool
	runVerbose bool
)

// runCmd represents the 'run' command: execute a JSON suite of external
// command variants and report the timing summaries.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a suite file of command variants",
	Long:  `The 'run' command loads a JSON suite file describing external-command variants, executes each variant the configured number of times, and prints a summary table (or the full JSON artifact with --json).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("suite")

		f, err := suite.Load(path)
		if err != nil {
			return err
		}
		if runReps > 0 {
			f.Repetitions = runReps
		}
		if runVerbose {
			pp.Println(f)
		}

		cfg := f.RunConfig(consoleObserver{w: cmd.ErrOrStderr()})
		res, err := bench.Run(f.BenchVariants(), cfg)
		if err != nil {
			return err
		}

		if runJSON {
			return report.WriteJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprint(cmd.OutOrStdout(), report.Table(res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("suite", "c", "suite.json", "suite file (e.g., suite.compress.json)")
	runCmd.Flags().IntVar(&runReps, "reps", 0, "override the suite file's repetition count")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "emit the full JSON artifact instead of a table")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "dump the resolved suite before running")

	viper.BindPFlag("suite", runCmd.Flags().Lookup("suite"))
}
