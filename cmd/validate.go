package cmd

import (
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check an almanac for overlapping rules and broken stage chains",
		Long:  validateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Validate(cmd.Context(), loadArgs(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
