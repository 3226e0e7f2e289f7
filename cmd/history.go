package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()
var historyLimitFlag int

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded solves",
		Long:  historyLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.History(cmd.Context(), domain.HistoryArgs{Limit: historyLimitFlag})
		},
	}
	cmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "number of entries to show, 0 for all")

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
