package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/almanac/internal/domain"
	m "github.com/mouse-blink/almanac/internal/model"
)

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()
var solveReportFlag string
var solveWatchFlag bool

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Print the lowest location for the seeds of an almanac",
		Long:  solveLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				LoadArgs: loadArgs(args[0]),
				Mode:     appConfig.SeedMode(),
				Workers:  appConfig.Parallel,
				Report:   m.Path(solveReportFlag),
				Watch:    solveWatchFlag,
			})
		},
	}
	cmd.Flags().StringP("mode", "m", string(m.SeedRanges), "seed reading: values, ranges or both")
	cmd.Flags().IntP("parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringVarP(&solveReportFlag, "report", "r", "", "write a report to this .json, .yaml or .toml file")
	cmd.Flags().BoolVarP(&solveWatchFlag, "watch", "w", false, "solve again whenever the file changes")

	_ = viper.BindPFlag("mode", cmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("parallel", cmd.Flags().Lookup("parallel"))

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
