package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/almanac/internal/domain"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()
var inspectFormatFlag string

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the seeds and stages of an almanac",
		Long:  inspectLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Inspect(cmd.Context(), domain.InspectArgs{
				LoadArgs: loadArgs(args[0]),
				Format:   inspectFormatFlag,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVarP(&inspectFormatFlag, "format", "f", "table", "output format: table, json, yaml or toml")

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
