package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

// traceCmd represents the trace command.
var traceCmd = newTraceCmd()

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace FILE [SEED...]",
		Short: "Show a seed's value after every stage",
		Long:  traceLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := parseSeeds(args[1:])
			if err != nil {
				return err
			}

			return workflow.Trace(cmd.Context(), domain.TraceArgs{
				LoadArgs: loadArgs(args[0]),
				Seeds:    seeds,
			})
		},
	}

	return cmd
}

func parseSeeds(args []string) ([]uint64, error) {
	seeds := make([]uint64, 0, len(args))

	for _, arg := range args {
		seed, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", arg, err)
		}

		seeds = append(seeds, seed)
	}

	return seeds, nil
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
